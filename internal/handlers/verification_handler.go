package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursehub/internal/services"
)

type VerificationHandler struct {
	Service *services.VerificationService
}

func NewVerificationHandler(s *services.VerificationService) *VerificationHandler {
	return &VerificationHandler{Service: s}
}

type registerRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// @Summary      Регистрация по номеру телефона
// @Description  Создаёт ожидающую запись и возвращает код подтверждения
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      registerRequest  true  "Номер и пароль"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  map[string]string
// @Router       /auth/register-phone [post]
func (h *VerificationHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.Service.RequestCode(req.PhoneNumber, req.Password)
	if err != nil {
		switch err {
		case services.ErrUserExists:
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this phone number already exists"})
		case services.ErrAlreadyVerified:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already verified"})
		case services.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Новый пароль должен содержать не менее 8 символов."})
		case services.ErrPhoneRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Номер телефона обязателен."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code})
}

type getCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// @Summary      Повторная выдача кода
// @Description  Перегенерирует код, если прошлому больше 5 минут
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        phone  body      getCodeRequest  true  "Номер телефона"
// @Success      200    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /phone-verification/verify_phone [post]
func (h *VerificationHandler) GetCode(c *gin.Context) {
	var req getCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.Service.RefreshIfStale(req.PhoneNumber)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Номер телефона не найден."})
		case services.ErrAlreadyVerified:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Номер телефона уже подтвержден."})
		case services.ErrPhoneRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Номер телефона обязателен."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Код подтверждения отправлен.",
		"verification_code": code,
	})
}

type verifyCodeRequest struct {
	PhoneNumber      string `json:"phone_number" binding:"required"`
	VerificationCode string `json:"verification_code" binding:"required"`
}

// @Summary      Подтверждение номера
// @Description  Сверяет код и создаёт пользователя
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        verify  body      verifyCodeRequest  true  "Номер и код"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Router       /auth/verify-code [post]
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Service.Verify(req.PhoneNumber, req.VerificationCode); err != nil {
		switch err {
		case services.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification code"})
		case services.ErrAlreadyVerified:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already verified"})
		case services.ErrUserExists:
			c.JSON(http.StatusConflict, gin.H{"error": "User with this phone number already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Phone number verified successfully"})
}
