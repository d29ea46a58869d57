package models

import "time"

// PasswordResetCode — 6-значный код для сброса пароля.
// У пользователя в каждый момент не больше одного неиспользованного кода:
// при выдаче нового все старые неиспользованные удаляются.
type PasswordResetCode struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	Code      string    `json:"code"`
	IsUsed    bool      `json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
}
