package services

import (
	"errors"
	"testing"

	"coursehub/internal/models"
)

func TestCourseEducationTypeValidation(t *testing.T) {
	s := NewCourseService(nil) // до репозитория дело не доходит

	if err := s.Create(&models.Course{Name: "Go", EducationType: "evening"}); !errors.Is(err, ErrBadEducationType) {
		t.Errorf("create with unknown type: err = %v, want ErrBadEducationType", err)
	}
	if err := s.Update(&models.Course{ID: 1, Name: "Go", EducationType: ""}); !errors.Is(err, ErrBadEducationType) {
		t.Errorf("update with empty type: err = %v, want ErrBadEducationType", err)
	}
}

func TestCourseEducationTypeDefault(t *testing.T) {
	c := &models.Course{Name: "Go"}
	s := NewCourseService(nil)
	// тип проставляется до обращения к репозиторию; падение на
	// nil-репозитории гасим и проверяем только подстановку
	func() {
		defer func() { _ = recover() }()
		_ = s.Create(c)
	}()
	if c.EducationType != "offline" {
		t.Errorf("education type = %q, want default offline", c.EducationType)
	}
}
