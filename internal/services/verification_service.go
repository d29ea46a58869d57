package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrCodeInvalid      = errors.New("code invalid")
	ErrCodeExpired      = errors.New("code expired")
	ErrAlreadyVerified  = errors.New("phone already verified")
	ErrUserExists       = errors.New("user already exists")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPhoneRequired    = errors.New("phone number required")
)

const (
	minPasswordLen = 8
	// Пока запись моложе codeStaleAfter, повторные запросы возвращают тот же код.
	codeStaleAfter = 5 * time.Minute
)

// VerificationService — жизненный цикл кода подтверждения номера:
// выдача при регистрации, перегенерация устаревшего, проверка и
// создание пользователя по подтверждённому номеру.
type VerificationService struct {
	Repo     repositories.PhoneVerificationRepository
	UserRepo repositories.UserRepository
	Auth     AuthService
	Codes    CodeGenerator
	Notify   Notifier

	Now func() time.Time // подменяется в тестах
}

func NewVerificationService(
	repo repositories.PhoneVerificationRepository,
	userRepo repositories.UserRepository,
	auth AuthService,
	codes CodeGenerator,
	notify Notifier,
) *VerificationService {
	return &VerificationService{
		Repo:     repo,
		UserRepo: userRepo,
		Auth:     auth,
		Codes:    codes,
		Notify:   notify,
		Now:      time.Now,
	}
}

// RequestCode — первый шаг регистрации: создаёт или обновляет ожидающую
// запись и возвращает действующий код. Внутри 5-минутного окна повторный
// запрос возвращает тот же код, после окна код перегенерируется.
func (s *VerificationService) RequestCode(phone, candidatePassword string) (string, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return "", ErrPhoneRequired
	}
	if len(candidatePassword) < minPasswordLen {
		return "", ErrPasswordTooShort
	}

	if u, err := s.UserRepo.GetByUsername(phone); err == nil && u != nil {
		return "", ErrUserExists
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	now := s.Now()

	existing, err := s.Repo.GetByPhone(phone)
	switch {
	case err == nil && existing.IsVerified:
		return "", ErrAlreadyVerified
	case err == nil && now.Sub(existing.CreatedAt) <= codeStaleAfter:
		// свежая запись: код не трогаем, только пароль и сброс флага
		v, err := s.Repo.Upsert(phone, candidatePassword, existing.Code, existing.CreatedAt)
		if err != nil {
			return "", err
		}
		log.Printf("[verify][request] existing code kept phone=%s", phone)
		s.Notify.SendCode(phone, v.Code)
		return v.Code, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("lookup verification: %w", err)
	}

	code := s.Codes.Code()
	v, err := s.Repo.Upsert(phone, candidatePassword, code, now)
	if err != nil {
		return "", err
	}
	log.Printf("[verify][request] new code issued phone=%s", phone)
	s.Notify.SendCode(phone, v.Code)
	return v.Code, nil
}

// RefreshIfStale — повторная выдача: если коду больше 5 минут, генерируем
// новый; свежий код возвращаем как есть.
func (s *VerificationService) RefreshIfStale(phone string) (string, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return "", ErrPhoneRequired
	}

	v, err := s.Repo.GetByPhone(phone)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup verification: %w", err)
	}
	if v.IsVerified {
		return "", ErrAlreadyVerified
	}

	now := s.Now()
	if now.Sub(v.CreatedAt) > codeStaleAfter {
		code := s.Codes.Code()
		if err := s.Repo.UpdateCode(v.ID, code, now); err != nil {
			return "", err
		}
		v.Code = code
		log.Printf("[verify][refresh] stale code regenerated phone=%s", phone)
	}
	s.Notify.SendCode(phone, v.Code)
	return v.Code, nil
}

// Verify — сверка кода и материализация пользователя.
// Срок кода здесь намеренно не проверяется: подтвердить можно до тех пор,
// пока код не перегенерирован повторной выдачей.
func (s *VerificationService) Verify(phone, code string) (*models.User, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	v, err := s.Repo.GetByPhoneAndCode(phone, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("lookup verification: %w", err)
	}
	if v.IsVerified {
		return nil, ErrAlreadyVerified
	}

	if err := s.Repo.MarkVerified(v.ID); err != nil {
		return nil, err
	}

	hash, err := s.Auth.HashPassword(v.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: phone, PasswordHash: hash}
	if err := s.UserRepo.Create(user); err != nil {
		// гонка двух Verify по одному номеру: второй упирается
		// в уникальный username
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Printf("[verify][confirm] user created id=%d phone=%s", user.ID, phone)
	return user, nil
}
