package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"coursehub/internal/models"
)

type PhoneVerificationRepository interface {
	// Upsert — одна живая запись на номер: при конфликте по phone
	// перезаписываем пароль, код, срок и сбрасываем is_verified.
	Upsert(phone, password, code string, createdAt time.Time) (*models.PhoneVerification, error)
	GetByPhone(phone string) (*models.PhoneVerification, error)
	GetByPhoneAndCode(phone, code string) (*models.PhoneVerification, error)
	UpdateCode(id int64, code string, createdAt time.Time) error
	MarkVerified(id int64) error
}

type phoneVerificationRepository struct {
	DB *sql.DB
}

func NewPhoneVerificationRepository(db *sql.DB) PhoneVerificationRepository {
	return &phoneVerificationRepository{DB: db}
}

func (r *phoneVerificationRepository) Upsert(phone, password, code string, createdAt time.Time) (*models.PhoneVerification, error) {
	const q = `
		INSERT INTO phone_verifications (phone, password, verification_code, is_verified, created_at)
		VALUES ($1, $2, $3, FALSE, $4)
		ON CONFLICT (phone) DO UPDATE
		SET password = EXCLUDED.password,
		    verification_code = EXCLUDED.verification_code,
		    is_verified = FALSE,
		    created_at = EXCLUDED.created_at
		RETURNING id, phone, password, verification_code, is_verified, created_at
	`
	v := &models.PhoneVerification{}
	err := r.DB.QueryRow(q, phone, password, code, createdAt).
		Scan(&v.ID, &v.Phone, &v.Password, &v.Code, &v.IsVerified, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("phone_verification upsert: %w", err)
	}
	return v, nil
}

func (r *phoneVerificationRepository) GetByPhone(phone string) (*models.PhoneVerification, error) {
	const q = `
		SELECT id, phone, password, verification_code, is_verified, created_at
		FROM phone_verifications
		WHERE phone = $1
	`
	return r.scan(r.DB.QueryRow(q, phone))
}

func (r *phoneVerificationRepository) GetByPhoneAndCode(phone, code string) (*models.PhoneVerification, error) {
	const q = `
		SELECT id, phone, password, verification_code, is_verified, created_at
		FROM phone_verifications
		WHERE phone = $1 AND verification_code = $2
	`
	return r.scan(r.DB.QueryRow(q, phone, code))
}

func (r *phoneVerificationRepository) UpdateCode(id int64, code string, createdAt time.Time) error {
	const q = `
		UPDATE phone_verifications
		SET verification_code=$1, created_at=$2, is_verified=FALSE
		WHERE id=$3
	`
	_, err := r.DB.Exec(q, code, createdAt, id)
	return err
}

func (r *phoneVerificationRepository) MarkVerified(id int64) error {
	_, err := r.DB.Exec(`UPDATE phone_verifications SET is_verified=TRUE WHERE id=$1`, id)
	return err
}

func (r *phoneVerificationRepository) scan(row *sql.Row) (*models.PhoneVerification, error) {
	v := &models.PhoneVerification{}
	if err := row.Scan(&v.ID, &v.Phone, &v.Password, &v.Code, &v.IsVerified, &v.CreatedAt); err != nil {
		return nil, err
	}
	return v, nil
}
