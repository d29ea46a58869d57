package repositories

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"coursehub/internal/models"
)

// ErrDuplicate — нарушение уникального ограничения (username, passport_number).
var ErrDuplicate = errors.New("duplicate key")

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	UpdatePassword(userID int, passwordHash string) error
	PassportTaken(passport string, excludeUserID int) (bool, error)

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	RevokeRefresh(token string) error
	GetByRefreshToken(token string) (*models.User, error)

	// Telegram-доставка кодов
	SetTelegramChat(userID int, chatID int64) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, username, password_hash,
	COALESCE(first_name,''), COALESCE(last_name,''),
	date_of_birth, passport_number, email, telegram_chat_id,
	is_active, is_staff, date_joined,
	refresh_token, refresh_expires_at, refresh_revoked
`

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (username, password_hash, is_active, is_staff, date_joined)
		VALUES ($1, $2, TRUE, FALSE, NOW())
		RETURNING id, date_joined
	`
	err := r.DB.QueryRow(q, user.Username, user.PasswordHash).Scan(&user.ID, &user.DateJoined)
	if err != nil {
		return mapPQError(err)
	}
	user.IsActive = true
	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var refreshToken sql.NullString
	var refreshExp sql.NullTime
	var dob sql.NullTime
	var passport, email sql.NullString
	var chatID sql.NullInt64
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash,
		&u.FirstName, &u.LastName,
		&dob, &passport, &email, &chatID,
		&u.IsActive, &u.IsStaff, &u.DateJoined,
		&refreshToken, &refreshExp, &u.RefreshRevoked,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		u.DateOfBirth = &dob.Time
	}
	if passport.Valid {
		u.PassportNumber = &passport.String
	}
	if email.Valid {
		u.Email = &email.String
	}
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	if refreshToken.Valid {
		u.RefreshToken = &refreshToken.String
	}
	if refreshExp.Valid {
		u.RefreshExpiresAt = &refreshExp.Time
	}
	return u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// Update — профильные поля (имя, дата рождения, паспорт, email).
// Пароль и refresh обновляются отдельными методами.
func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET first_name=$1, last_name=$2, date_of_birth=$3, passport_number=$4, email=$5
		WHERE id=$6
	`
	_, err := r.DB.Exec(q,
		user.FirstName, user.LastName, user.DateOfBirth,
		user.PassportNumber, user.Email, user.ID,
	)
	return mapPQError(err)
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	_, err := r.DB.Exec(`UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, userID)
	return err
}

func (r *userRepository) PassportTaken(passport string, excludeUserID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE passport_number=$1 AND id<>$2)`,
		passport, excludeUserID,
	).Scan(&exists)
	return exists, err
}

func (r *userRepository) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE id=$3
	`
	_, err := r.DB.Exec(q, token, expiresAt, userID)
	return err
}

// RotateRefresh — атомарная ротация: меняем токен только если старый ещё актуален.
func (r *userRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE refresh_token=$3 AND refresh_revoked=FALSE
		RETURNING ` + userColumns
	row := r.DB.QueryRow(q, newToken, newExpiresAt, oldToken)
	return r.scanUser(row)
}

func (r *userRepository) RevokeRefresh(token string) error {
	res, err := r.DB.Exec(`UPDATE users SET refresh_revoked=TRUE WHERE refresh_token=$1`, token)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByRefreshToken(token string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE refresh_token = $1`, token))
}

func (r *userRepository) SetTelegramChat(userID int, chatID int64) error {
	_, err := r.DB.Exec(`UPDATE users SET telegram_chat_id=$1 WHERE id=$2`, chatID, userID)
	return err
}

// mapPQError — уникальные ограничения Postgres (23505) превращаем в ErrDuplicate,
// чтобы сервисы не зависели от драйвера.
func mapPQError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
