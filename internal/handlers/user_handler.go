package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coursehub/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	DateOfBirth    *string `json:"date_of_birth"` // YYYY-MM-DD
	PassportNumber *string `json:"passport_number"`
	Email          *string `json:"email"`
}

// @Summary      Текущий пользователь
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Router       /user/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	user, err := h.service.GetByID(userID)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Обновление данных пользователя
// @Description  Частичное обновление: меняются только переданные поля
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /user/update [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := services.ProfileUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PassportNumber: req.PassportNumber,
		Email:          req.Email,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
			return
		}
		upd.DateOfBirth = &dob
	}

	user, err := h.service.UpdateProfile(userID, upd)
	if err != nil {
		switch err {
		case services.ErrPassportFormat:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Номер паспорта должен состоять из 2 латинских заглавных букв и 7 цифр (например, AB1234567)."})
		case services.ErrPassportTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Этот номер паспорта уже используется."})
		case services.ErrBirthDateRange:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Год рождения не может быть меньше 1900."})
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("[user][update] service error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Данные успешно обновлены",
		"user":    user,
	})
}
