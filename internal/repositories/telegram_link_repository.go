package repositories

import (
	"context"
	"database/sql"
	"time"
)

// TelegramLink — одноразовый код привязки аккаунта к Telegram-чату.
// Пользователь открывает deep-link t.me/<bot>?start=<code>, бот по
// /start гасит код и сохраняет chat_id на пользователе.
type TelegramLink struct {
	ID        int64
	UserID    int
	Code      string
	ExpiresAt time.Time
}

type TelegramLinkRepository interface {
	// Issue — регистрирует код; Consume отдаст его ровно один раз.
	Issue(ctx context.Context, userID int, code string, expiresAt time.Time) error
	// Consume — атомарно гасит живой код. Погашенный или истёкший
	// код возвращает sql.ErrNoRows.
	Consume(ctx context.Context, code string) (*TelegramLink, error)
}

type telegramLinkRepository struct{ db *sql.DB }

func NewTelegramLinkRepository(db *sql.DB) TelegramLinkRepository {
	return &telegramLinkRepository{db: db}
}

func (r *telegramLinkRepository) Issue(ctx context.Context, userID int, code string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO telegram_links (user_id, code, expires_at) VALUES ($1, $2, $3)`,
		userID, code, expiresAt)
	return err
}

// Одноразовость держится на одном UPDATE: used и срок проверяются
// в предикате, конкурент получает пустой результат.
func (r *telegramLinkRepository) Consume(ctx context.Context, code string) (*TelegramLink, error) {
	const q = `
		UPDATE telegram_links
		SET used=TRUE
		WHERE code=$1 AND used=FALSE AND expires_at > NOW()
		RETURNING id, user_id, code, expires_at
	`
	var l TelegramLink
	if err := r.db.QueryRowContext(ctx, q, code).Scan(&l.ID, &l.UserID, &l.Code, &l.ExpiresAt); err != nil {
		return nil, err
	}
	return &l, nil
}
