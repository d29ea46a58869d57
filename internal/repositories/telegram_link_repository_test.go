package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"
)

func TestTelegramLinkConsume(t *testing.T) {
	exp := time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)
	rows := &stubRows{
		cols: []string{"id", "user_id", "code", "expires_at"},
		data: [][]driver.Value{{int64(1), int64(7), "abc123", exp}},
	}
	repo := NewTelegramLinkRepository(openStubDB(t, "stub-tg-links", rows))

	if err := repo.Issue(context.Background(), 7, "abc123", exp); err != nil {
		t.Fatalf("Issue: %v", err)
	}

	l, err := repo.Consume(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if l.UserID != 7 || l.Code != "abc123" {
		t.Fatalf("link = %+v, want user 7 code abc123", l)
	}
}

func TestTelegramLinkConsumeDeadCode(t *testing.T) {
	// предикат used=FALSE AND expires_at > NOW() не нашёл строку
	empty := &stubRows{cols: []string{"id", "user_id", "code", "expires_at"}}
	repo := NewTelegramLinkRepository(openStubDB(t, "stub-tg-links-dead", empty))

	if _, err := repo.Consume(context.Background(), "abc123"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}
