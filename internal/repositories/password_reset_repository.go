package repositories

import (
	"database/sql"
	"time"

	"coursehub/internal/models"
)

type PasswordResetRepository interface {
	// CreateReplacing — в одной транзакции удаляет все неиспользованные коды
	// пользователя и вставляет новый: после выдачи виден ровно один живой код.
	CreateReplacing(userID int, code string, createdAt time.Time) (*models.PasswordResetCode, error)
	GetUnused(userID int, code string) (*models.PasswordResetCode, error)
	MarkUsed(id int64) error
}

type passwordResetRepository struct {
	DB *sql.DB
}

func NewPasswordResetRepository(db *sql.DB) PasswordResetRepository {
	return &passwordResetRepository{DB: db}
}

func (r *passwordResetRepository) CreateReplacing(userID int, code string, createdAt time.Time) (*models.PasswordResetCode, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM password_reset_codes WHERE user_id=$1 AND is_used=FALSE`, userID,
	); err != nil {
		return nil, err
	}

	rc := &models.PasswordResetCode{UserID: userID, Code: code, CreatedAt: createdAt}
	err = tx.QueryRow(
		`INSERT INTO password_reset_codes (user_id, code, is_used, created_at)
		 VALUES ($1, $2, FALSE, $3)
		 RETURNING id`,
		userID, code, createdAt,
	).Scan(&rc.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *passwordResetRepository) GetUnused(userID int, code string) (*models.PasswordResetCode, error) {
	const q = `
		SELECT id, user_id, code, is_used, created_at
		FROM password_reset_codes
		WHERE user_id=$1 AND code=$2 AND is_used=FALSE
	`
	rc := &models.PasswordResetCode{}
	if err := r.DB.QueryRow(q, userID, code).Scan(&rc.ID, &rc.UserID, &rc.Code, &rc.IsUsed, &rc.CreatedAt); err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *passwordResetRepository) MarkUsed(id int64) error {
	res, err := r.DB.Exec(`UPDATE password_reset_codes SET is_used=TRUE WHERE id=$1 AND is_used=FALSE`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
