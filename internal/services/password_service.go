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
	ErrWrongPassword    = errors.New("wrong password")
	ErrPasswordMismatch = errors.New("password mismatch")
)

// Код сброса живёт ровно 10 минут; граница входит в срок действия.
const resetCodeTTL = 10 * time.Minute

// PasswordService — сброс пароля по коду и смена пароля по старому.
type PasswordService struct {
	UserRepo repositories.UserRepository
	Repo     repositories.PasswordResetRepository
	Auth     AuthService
	Codes    CodeGenerator
	Notify   Notifier

	Now func() time.Time
}

func NewPasswordService(
	userRepo repositories.UserRepository,
	repo repositories.PasswordResetRepository,
	auth AuthService,
	codes CodeGenerator,
	notify Notifier,
) *PasswordService {
	return &PasswordService{
		UserRepo: userRepo,
		Repo:     repo,
		Auth:     auth,
		Codes:    codes,
		Notify:   notify,
		Now:      time.Now,
	}
}

// RequestReset — выдаёт новый код, затирая все неиспользованные коды
// пользователя: живым остаётся ровно один.
func (s *PasswordService) RequestReset(phone string) (string, error) {
	phone = NormalizePhone(phone)
	user, err := s.UserRepo.GetByUsername(phone)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	code := s.Codes.Code()
	rc, err := s.Repo.CreateReplacing(user.ID, code, s.Now())
	if err != nil {
		return "", fmt.Errorf("create reset code: %w", err)
	}

	log.Printf("[password][reset-request] code issued user_id=%d", user.ID)
	s.Notify.SendCodeToUser(user, rc.Code)
	return rc.Code, nil
}

// VerifyResetCode — проверка без потребления: код остаётся неиспользованным.
func (s *PasswordService) VerifyResetCode(phone, code string) (*models.PasswordResetCode, error) {
	phone = NormalizePhone(phone)
	user, err := s.UserRepo.GetByUsername(phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return s.matchResetCode(user.ID, code)
}

// ResetPassword — установка нового пароля по коду. Проверка совпадения и
// срока выполняется заново, независимо от предыдущего VerifyResetCode.
func (s *PasswordService) ResetPassword(phone, code, newPassword string) error {
	phone = NormalizePhone(phone)
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}

	user, err := s.UserRepo.GetByUsername(phone)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCodeInvalid
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	rc, err := s.matchResetCode(user.ID, code)
	if err != nil {
		return err
	}

	// сначала потребляем код, потом меняем пароль: проигравший гонку
	// за is_used=FALSE получает InvalidCode, не тронув пароль
	if err := s.Repo.MarkUsed(rc.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCodeInvalid
		}
		return err
	}

	hash, err := s.Auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	log.Printf("[password][reset] password reset user_id=%d", user.ID)
	s.Notify.SendPasswordChanged(user)
	return nil
}

// ChangePassword — смена пароля авторизованным пользователем.
func (s *PasswordService) ChangePassword(userID int, oldPassword, newPassword, confirmPassword string) error {
	user, err := s.UserRepo.GetByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	if !s.Auth.CheckPassword(user.PasswordHash, oldPassword) {
		return ErrWrongPassword
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}

	hash, err := s.Auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	log.Printf("[password][change] password changed user_id=%d", user.ID)
	s.Notify.SendPasswordChanged(user)
	return nil
}

func (s *PasswordService) matchResetCode(userID int, code string) (*models.PasswordResetCode, error) {
	rc, err := s.Repo.GetUnused(userID, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCodeInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("lookup reset code: %w", err)
	}
	// строго ">": ровно в created_at+10m код ещё действует
	if s.Now().Sub(rc.CreatedAt) > resetCodeTTL {
		return nil, ErrCodeExpired
	}
	return rc, nil
}
