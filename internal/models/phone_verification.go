package models

import "time"

// PhoneVerification — ожидающая подтверждения регистрация.
// На один номер — максимум одна живая запись (upsert по phone).
// Пароль храним в открытом виде до подтверждения: хешируем его
// только в момент создания пользователя.
type PhoneVerification struct {
	ID         int64     `json:"id"`
	Phone      string    `json:"phone_number"`
	Password   string    `json:"-"`
	Code       string    `json:"verification_code"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
