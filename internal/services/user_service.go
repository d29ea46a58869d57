package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"coursehub/internal/models"
	"coursehub/internal/repositories"
)

var (
	ErrPassportFormat = errors.New("invalid passport format")
	ErrPassportTaken  = errors.New("passport number already in use")
	ErrBirthDateRange = errors.New("birth year before 1900")
)

// Две латинские заглавные буквы + семь цифр, например AB1234567.
var passportPattern = regexp.MustCompile(`^[A-Z]{2}\d{7}$`)

type ProfileUpdate struct {
	FirstName      *string
	LastName       *string
	DateOfBirth    *time.Time
	PassportNumber *string
	Email          *string
}

type UserService interface {
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateProfile(userID int, upd ProfileUpdate) (*models.User, error)

	StoreRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	RevokeRefresh(token string) error
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(id int) (*models.User, error) {
	u, err := s.repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	u, err := s.repo.GetByUsername(NormalizePhone(username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

// UpdateProfile — частичное обновление: меняем только переданные поля.
func (s *userService) UpdateProfile(userID int, upd ProfileUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.DateOfBirth != nil {
		if upd.DateOfBirth.Year() < 1900 {
			return nil, ErrBirthDateRange
		}
		user.DateOfBirth = upd.DateOfBirth
	}
	if upd.PassportNumber != nil {
		p := *upd.PassportNumber
		if !passportPattern.MatchString(p) {
			return nil, ErrPassportFormat
		}
		taken, err := s.repo.PassportTaken(p, userID)
		if err != nil {
			return nil, fmt.Errorf("check passport: %w", err)
		}
		if taken {
			return nil, ErrPassportTaken
		}
		user.PassportNumber = &p
	}
	if upd.Email != nil {
		user.Email = upd.Email
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPassportTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) StoreRefresh(userID int, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(userID, token, expiresAt)
}

// RotateRefresh — токен меняется только пока старый жив и не отозван.
func (s *userService) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	user, err := s.repo.GetByRefreshToken(oldToken)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup refresh: %w", err)
	}
	if user.RefreshRevoked || user.RefreshExpiresAt == nil || time.Now().After(*user.RefreshExpiresAt) {
		return nil, ErrNotFound
	}
	return s.repo.RotateRefresh(oldToken, newToken, newExpiresAt)
}

func (s *userService) RevokeRefresh(token string) error {
	err := s.repo.RevokeRefresh(token)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
