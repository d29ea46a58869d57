package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/internal/services"
)

type PasswordHandler struct {
	Service *services.PasswordService
}

func NewPasswordHandler(s *services.PasswordService) *PasswordHandler {
	return &PasswordHandler{Service: s}
}

// @Summary      Запрос кода для сброса пароля
// @Tags         Password
// @Accept       json
// @Produce      json
// @Router       /user/forgot-password [post]
func (h *PasswordHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Service.RequestReset(req.PhoneNumber); err != nil {
		switch err {
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь с таким номером телефона не найден."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue reset code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Код для сброса пароля отправлен."})
}

// @Summary      Проверка кода сброса
// @Tags         Password
// @Accept       json
// @Produce      json
// @Router       /user/forgot-password/verify [post]
func (h *PasswordHandler) VerifyResetCode(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
		Code        string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Service.VerifyResetCode(req.PhoneNumber, req.Code); err != nil {
		switch err {
		case services.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный или уже использованный код."})
		case services.ErrCodeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Код истёк."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Код подтверждён."})
}

// @Summary      Сброс пароля по коду
// @Tags         Password
// @Accept       json
// @Produce      json
// @Router       /user/forgot-password/confirm [post]
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.ResetPassword(req.PhoneNumber, req.Code, req.NewPassword); err != nil {
		switch err {
		case services.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный или уже использованный код."})
		case services.ErrCodeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Код истёк."})
		case services.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Новый пароль должен содержать не менее 8 символов."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пароль успешно сброшен."})
}

// @Summary      Смена пароля
// @Description  Требует авторизации и старого пароля
// @Tags         Password
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Router       /user/change-password [post]
func (h *PasswordHandler) ChangePassword(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		OldPassword     string `json:"old_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Необходимо указать старый пароль, новый пароль и его подтверждение."})
		return
	}

	if err := h.Service.ChangePassword(userID, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		switch err {
		case services.ErrWrongPassword:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Старый пароль указан неверно."})
		case services.ErrPasswordMismatch:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Новый пароль и его подтверждение не совпадают."})
		case services.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Новый пароль должен содержать не менее 8 символов."})
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Пароль успешно изменён."})
}
