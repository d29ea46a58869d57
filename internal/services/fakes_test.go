package services

import (
	"database/sql"
	"time"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
)

// Хранилища в памяти для юнит-тестов сервисов.

type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return repositories.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.IsActive = true
	user.DateJoined = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return sql.ErrNoRows
	}
	if user.PassportNumber != nil {
		for id, u := range r.users {
			if id != user.ID && u.PassportNumber != nil && *u.PassportNumber == *user.PassportNumber {
				return repositories.ErrDuplicate
			}
		}
	}
	cp := *user
	cp.PasswordHash = stored.PasswordHash
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID int, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return sql.ErrNoRows
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) PassportTaken(passport string, excludeUserID int) (bool, error) {
	for id, u := range r.users {
		if id != excludeUserID && u.PassportNumber != nil && *u.PassportNumber == passport {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return sql.ErrNoRows
	}
	u.RefreshToken = &token
	u.RefreshExpiresAt = &expiresAt
	u.RefreshRevoked = false
	return nil
}

func (r *fakeUserRepo) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	for _, u := range r.users {
		if u.RefreshToken != nil && *u.RefreshToken == oldToken && !u.RefreshRevoked {
			u.RefreshToken = &newToken
			u.RefreshExpiresAt = &newExpiresAt
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) RevokeRefresh(token string) error {
	for _, u := range r.users {
		if u.RefreshToken != nil && *u.RefreshToken == token {
			u.RefreshRevoked = true
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *fakeUserRepo) GetByRefreshToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.RefreshToken != nil && *u.RefreshToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) SetTelegramChat(userID int, chatID int64) error {
	u, ok := r.users[userID]
	if !ok {
		return sql.ErrNoRows
	}
	u.TelegramChatID = &chatID
	return nil
}

type fakeVerificationRepo struct {
	byPhone map[string]*models.PhoneVerification
	nextID  int64
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{byPhone: map[string]*models.PhoneVerification{}, nextID: 1}
}

func (r *fakeVerificationRepo) Upsert(phone, password, code string, createdAt time.Time) (*models.PhoneVerification, error) {
	v, ok := r.byPhone[phone]
	if !ok {
		v = &models.PhoneVerification{ID: r.nextID, Phone: phone}
		r.nextID++
		r.byPhone[phone] = v
	}
	v.Password = password
	v.Code = code
	v.CreatedAt = createdAt
	v.IsVerified = false
	cp := *v
	return &cp, nil
}

func (r *fakeVerificationRepo) GetByPhone(phone string) (*models.PhoneVerification, error) {
	v, ok := r.byPhone[phone]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVerificationRepo) GetByPhoneAndCode(phone, code string) (*models.PhoneVerification, error) {
	v, ok := r.byPhone[phone]
	if !ok || v.Code != code {
		return nil, sql.ErrNoRows
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVerificationRepo) UpdateCode(id int64, code string, createdAt time.Time) error {
	for _, v := range r.byPhone {
		if v.ID == id {
			v.Code = code
			v.CreatedAt = createdAt
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *fakeVerificationRepo) MarkVerified(id int64) error {
	for _, v := range r.byPhone {
		if v.ID == id {
			v.IsVerified = true
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeResetRepo struct {
	codes  []*models.PasswordResetCode
	nextID int64
}

func newFakeResetRepo() *fakeResetRepo { return &fakeResetRepo{nextID: 1} }

func (r *fakeResetRepo) CreateReplacing(userID int, code string, createdAt time.Time) (*models.PasswordResetCode, error) {
	kept := r.codes[:0]
	for _, rc := range r.codes {
		if rc.UserID == userID && !rc.IsUsed {
			continue
		}
		kept = append(kept, rc)
	}
	r.codes = kept

	rc := &models.PasswordResetCode{ID: r.nextID, UserID: userID, Code: code, CreatedAt: createdAt}
	r.nextID++
	r.codes = append(r.codes, rc)
	cp := *rc
	return &cp, nil
}

func (r *fakeResetRepo) GetUnused(userID int, code string) (*models.PasswordResetCode, error) {
	for _, rc := range r.codes {
		if rc.UserID == userID && rc.Code == code && !rc.IsUsed {
			cp := *rc
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeResetRepo) MarkUsed(id int64) error {
	for _, rc := range r.codes {
		if rc.ID == id && !rc.IsUsed {
			rc.IsUsed = true
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *fakeResetRepo) unusedCount(userID int) int {
	n := 0
	for _, rc := range r.codes {
		if rc.UserID == userID && !rc.IsUsed {
			n++
		}
	}
	return n
}

func userOf(username string) *models.User {
	return &models.User{Username: username, PasswordHash: "hash:password123"}
}

// fakeAuth — без bcrypt, чтобы тесты не зависели от его стоимости.
type fakeAuth struct{}

func (fakeAuth) HashPassword(plain string) (string, error) { return "hash:" + plain, nil }
func (fakeAuth) CheckPassword(hash, plain string) bool     { return hash == "hash:"+plain }

// seqCodes — выдаёт коды из списка по порядку, потом повторяет последний.
type seqCodes struct {
	codes []string
	i     int
}

func (s *seqCodes) Code() string {
	if s.i < len(s.codes)-1 {
		c := s.codes[s.i]
		s.i++
		return c
	}
	return s.codes[len(s.codes)-1]
}

// fixedClock — управляемое время для проверки окон и сроков.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
