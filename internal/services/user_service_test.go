package services

import (
	"errors"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfilePassportValidation(t *testing.T) {
	cases := []struct {
		name     string
		passport string
		wantErr  error
	}{
		{"valid", "AB1234567", nil},
		{"lowercase letters", "ab1234567", ErrPassportFormat},
		{"six digits", "AB123456", ErrPassportFormat},
		{"eight digits", "AB12345678", ErrPassportFormat},
		{"one letter", "A12345678", ErrPassportFormat},
		{"cyrillic letters", "АБ1234567", ErrPassportFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := newFakeUserRepo()
			if err := users.Create(userOf("77001234567")); err != nil {
				t.Fatal(err)
			}
			s := NewUserService(users)

			_, err := s.UpdateProfile(1, ProfileUpdate{PassportNumber: strPtr(tc.passport)})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("passport %q: err = %v, want %v", tc.passport, err, tc.wantErr)
			}
		})
	}
}

func TestUpdateProfilePassportTaken(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	if err := users.Create(userOf("77007654321")); err != nil {
		t.Fatal(err)
	}
	s := NewUserService(users)

	if _, err := s.UpdateProfile(1, ProfileUpdate{PassportNumber: strPtr("AB1234567")}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateProfile(2, ProfileUpdate{PassportNumber: strPtr("AB1234567")}); !errors.Is(err, ErrPassportTaken) {
		t.Fatalf("err = %v, want ErrPassportTaken", err)
	}
	// свой собственный паспорт можно переотправить
	if _, err := s.UpdateProfile(1, ProfileUpdate{PassportNumber: strPtr("AB1234567")}); err != nil {
		t.Fatalf("resubmit own passport: %v", err)
	}
}

func TestUpdateProfileBirthDate(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	s := NewUserService(users)

	tooOld := time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)
	if _, err := s.UpdateProfile(1, ProfileUpdate{DateOfBirth: &tooOld}); !errors.Is(err, ErrBirthDateRange) {
		t.Fatalf("year 1899: err = %v, want ErrBirthDateRange", err)
	}

	ok := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := s.UpdateProfile(1, ProfileUpdate{DateOfBirth: &ok})
	if err != nil {
		t.Fatalf("year 1900: %v", err)
	}
	if u.DateOfBirth == nil || !u.DateOfBirth.Equal(ok) {
		t.Errorf("date of birth not stored")
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	s := NewUserService(users)

	if _, err := s.UpdateProfile(1, ProfileUpdate{FirstName: strPtr("Erlan"), LastName: strPtr("Seitov")}); err != nil {
		t.Fatal(err)
	}
	// обновляем одно поле — остальные не трогаем
	u, err := s.UpdateProfile(1, ProfileUpdate{Email: strPtr("erlan@example.com")})
	if err != nil {
		t.Fatal(err)
	}
	if u.FirstName != "Erlan" || u.LastName != "Seitov" {
		t.Errorf("untouched fields lost: first=%q last=%q", u.FirstName, u.LastName)
	}
	if u.Email == nil || *u.Email != "erlan@example.com" {
		t.Errorf("email not stored")
	}

	if _, err := s.UpdateProfile(99, ProfileUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user: err = %v, want ErrNotFound", err)
	}
}

func TestRotateRefresh(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	s := NewUserService(users)

	if err := s.StoreRefresh(1, "old-token", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	u, err := s.RotateRefresh("old-token", "new-token", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("RotateRefresh: %v", err)
	}
	if u.RefreshToken == nil || *u.RefreshToken != "new-token" {
		t.Fatal("token not rotated")
	}
	// старый токен мёртв после ротации
	if _, err := s.RotateRefresh("old-token", "another", time.Now().Add(time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rotated-out token: err = %v, want ErrNotFound", err)
	}
}

func TestRotateRefreshRejectsRevokedAndExpired(t *testing.T) {
	users := newFakeUserRepo()
	if err := users.Create(userOf("77001234567")); err != nil {
		t.Fatal(err)
	}
	s := NewUserService(users)

	if err := s.StoreRefresh(1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.RevokeRefresh("tok"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RotateRefresh("tok", "new", time.Now().Add(time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("revoked token: err = %v, want ErrNotFound", err)
	}

	if err := s.StoreRefresh(1, "tok2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RotateRefresh("tok2", "new", time.Now().Add(time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired token: err = %v, want ErrNotFound", err)
	}

	if err := s.RevokeRefresh("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("revoke unknown token: err = %v, want ErrNotFound", err)
	}
}
