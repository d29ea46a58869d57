package models

import "time"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"` // номер телефона без "+"
	PasswordHash string `json:"-"`        // не отдаём наружу

	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	PassportNumber *string    `json:"passport_number,omitempty"`
	Email          *string    `json:"email,omitempty"`

	IsActive   bool      `json:"is_active"`
	IsStaff    bool      `json:"is_staff"`
	DateJoined time.Time `json:"date_joined"`

	// Telegram-доставка кодов (если аккаунт привязан)
	TelegramChatID *int64 `json:"-"`

	// refresh-хранение в БД
	RefreshToken     *string    `json:"-"` // храним opaque строку
	RefreshExpiresAt *time.Time `json:"-"` // срок действия
	RefreshRevoked   bool       `json:"-"` // если понадобится отозвать
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
