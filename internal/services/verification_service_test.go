package services

import (
	"errors"
	"testing"
	"time"
)

func newVerificationService(repo *fakeVerificationRepo, users *fakeUserRepo, codes CodeGenerator, clk *fixedClock) *VerificationService {
	s := NewVerificationService(repo, users, fakeAuth{}, codes, NopNotifier{})
	s.Now = clk.Now
	return s
}

func TestRequestCodeKeepsCodeWithinWindow(t *testing.T) {
	repo := newFakeVerificationRepo()
	clk := &fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := newVerificationService(repo, newFakeUserRepo(), &seqCodes{codes: []string{"111111", "222222"}}, clk)

	first, err := s.RequestCode("+77001234567", "password123")
	if err != nil {
		t.Fatalf("RequestCode: %v", err)
	}
	if first != "111111" {
		t.Fatalf("first code = %q, want 111111", first)
	}

	// внутри окна — тот же код, и окно не сдвигается
	clk.Advance(4 * time.Minute)
	second, err := s.RequestCode("+77001234567", "password123")
	if err != nil {
		t.Fatalf("RequestCode (repeat): %v", err)
	}
	if second != first {
		t.Fatalf("repeat within window: code = %q, want %q", second, first)
	}
	v, _ := repo.GetByPhone("77001234567")
	if !v.CreatedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("CreatedAt moved to %v, window must not slide", v.CreatedAt)
	}

	// спустя окно — новый код
	clk.Advance(1*time.Minute + time.Second)
	third, err := s.RequestCode("+77001234567", "password123")
	if err != nil {
		t.Fatalf("RequestCode (stale): %v", err)
	}
	if third != "222222" {
		t.Fatalf("stale code = %q, want 222222", third)
	}
}

func TestRequestCodeValidation(t *testing.T) {
	clk := &fixedClock{t: time.Now()}
	s := newVerificationService(newFakeVerificationRepo(), newFakeUserRepo(), &seqCodes{codes: []string{"111111"}}, clk)

	if _, err := s.RequestCode("  ", "password123"); !errors.Is(err, ErrPhoneRequired) {
		t.Errorf("empty phone: err = %v, want ErrPhoneRequired", err)
	}
	if _, err := s.RequestCode("+77001234567", "short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("short password: err = %v, want ErrPasswordTooShort", err)
	}
}

func TestRequestCodeRejectsExistingUser(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	clk := &fixedClock{t: time.Now()}
	s := newVerificationService(newFakeVerificationRepo(), users, &seqCodes{codes: []string{"111111"}}, clk)

	if _, err := s.RequestCode("+77001234567", "password123"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestRequestCodeRejectsVerifiedRecord(t *testing.T) {
	repo := newFakeVerificationRepo()
	clk := &fixedClock{t: time.Now()}
	s := newVerificationService(repo, newFakeUserRepo(), &seqCodes{codes: []string{"111111"}}, clk)

	v, _ := repo.Upsert("77001234567", "password123", "111111", clk.Now())
	if err := repo.MarkVerified(v.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := s.RequestCode("77001234567", "password123"); !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("err = %v, want ErrAlreadyVerified", err)
	}
}

func TestVerifyCreatesUser(t *testing.T) {
	repo := newFakeVerificationRepo()
	users := newFakeUserRepo()
	clk := &fixedClock{t: time.Now()}
	s := newVerificationService(repo, users, &seqCodes{codes: []string{"123456"}}, clk)

	if _, err := s.RequestCode("+77001234567", "password123"); err != nil {
		t.Fatal(err)
	}

	// код не протухает сам по себе: подтверждение работает и через час
	clk.Advance(time.Hour)
	u, err := s.Verify("+77001234567", "123456")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if u.Username != "77001234567" {
		t.Errorf("username = %q, want normalized phone", u.Username)
	}
	if u.PasswordHash != "hash:password123" {
		t.Errorf("password hash = %q, want hash of pending password", u.PasswordHash)
	}

	v, _ := repo.GetByPhone("77001234567")
	if !v.IsVerified {
		t.Error("verification record not marked verified")
	}
}

func TestVerifyWrongCodeCreatesNothing(t *testing.T) {
	repo := newFakeVerificationRepo()
	users := newFakeUserRepo()
	clk := &fixedClock{t: time.Now()}
	s := newVerificationService(repo, users, &seqCodes{codes: []string{"123456"}}, clk)

	if _, err := s.RequestCode("77001234567", "password123"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Verify("77001234567", "000000"); !errors.Is(err, ErrCodeInvalid) {
		t.Fatalf("err = %v, want ErrCodeInvalid", err)
	}
	if _, err := users.GetByUsername("77001234567"); err == nil {
		t.Fatal("user created despite wrong code")
	}
	if v, _ := repo.GetByPhone("77001234567"); v.IsVerified {
		t.Fatal("record marked verified despite wrong code")
	}
}

func TestVerifyDuplicateUserRace(t *testing.T) {
	repo := newFakeVerificationRepo()
	users := newFakeUserRepo()
	clk := &fixedClock{t: time.Now()}
	s := newVerificationService(repo, users, &seqCodes{codes: []string{"123456"}}, clk)

	if _, err := s.RequestCode("77001234567", "password123"); err != nil {
		t.Fatal(err)
	}
	// конкурент успел создать пользователя между проверкой и вставкой
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Verify("77001234567", "123456"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestRefreshIfStale(t *testing.T) {
	repo := newFakeVerificationRepo()
	clk := &fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := newVerificationService(repo, newFakeUserRepo(), &seqCodes{codes: []string{"111111", "222222"}}, clk)

	if _, err := s.RefreshIfStale("77001234567"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing record: err = %v, want ErrNotFound", err)
	}

	if _, err := s.RequestCode("77001234567", "password123"); err != nil {
		t.Fatal(err)
	}

	clk.Advance(3 * time.Minute)
	code, err := s.RefreshIfStale("77001234567")
	if err != nil {
		t.Fatalf("RefreshIfStale (fresh): %v", err)
	}
	if code != "111111" {
		t.Errorf("fresh code = %q, want 111111", code)
	}

	clk.Advance(3 * time.Minute)
	code, err = s.RefreshIfStale("77001234567")
	if err != nil {
		t.Fatalf("RefreshIfStale (stale): %v", err)
	}
	if code != "222222" {
		t.Errorf("stale code = %q, want 222222", code)
	}
	// старый код больше не принимается
	if _, err := s.Verify("77001234567", "111111"); !errors.Is(err, ErrCodeInvalid) {
		t.Errorf("old code after refresh: err = %v, want ErrCodeInvalid", err)
	}
}
