package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"coursehub/internal/services"
	"coursehub/internal/utils"
)

type IntegrationsHandler struct {
	Telegram *services.TelegramService
}

func NewIntegrationsHandler(tg *services.TelegramService) *IntegrationsHandler {
	return &IntegrationsHandler{Telegram: tg}
}

// RequestTelegramLink — выдаёт deep-link для привязки чата:
// коды подтверждения будут дублироваться в Telegram.
func (h *IntegrationsHandler) RequestTelegramLink(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	link, err := h.Telegram.RequestLink(c.Request.Context(), userID, utils.NewLinkCode())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// Webhook — апдейты бота от Telegram.
func (h *IntegrationsHandler) Webhook(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad update"})
		return
	}
	h.Telegram.HandleUpdate(c.Request.Context(), update)
	c.Status(http.StatusOK)
}
