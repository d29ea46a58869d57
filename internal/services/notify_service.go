package services

import (
	"log"

	"coursehub/internal/models"
	"coursehub/internal/utils"
)

// Notifier — доставка кодов и уведомлений. Для сервисов это fire-and-forget:
// ошибка канала логируется и никогда не валит запрос.
type Notifier interface {
	SendCode(phone, code string)
	SendCodeToUser(u *models.User, code string)
	SendPasswordChanged(u *models.User)
}

type notifyService struct {
	sms   *utils.EskizClient
	tg    *TelegramService
	email EmailService
}

func NewNotifyService(sms *utils.EskizClient, tg *TelegramService, email EmailService) Notifier {
	return &notifyService{sms: sms, tg: tg, email: email}
}

func (n *notifyService) SendCode(phone, code string) {
	if n.sms == nil {
		return
	}
	if err := n.sms.SendSMS(phone, "Код подтверждения: "+code); err != nil {
		log.Printf("[notify][sms] send failed phone=%s: %v", phone, err)
	}
}

// SendCodeToUser — SMS всегда; Telegram и email — если привязаны.
func (n *notifyService) SendCodeToUser(u *models.User, code string) {
	n.SendCode(u.Username, code)
	if n.tg != nil && u.TelegramChatID != nil {
		if err := n.tg.SendMessage(*u.TelegramChatID, "Код подтверждения: <b>"+code+"</b>"); err != nil {
			log.Printf("[notify][tg] send failed user_id=%d: %v", u.ID, err)
		}
	}
	if n.email != nil && u.Email != nil {
		if err := n.email.SendResetCode(*u.Email, code); err != nil {
			log.Printf("[notify][email] send failed user_id=%d: %v", u.ID, err)
		}
	}
}

func (n *notifyService) SendPasswordChanged(u *models.User) {
	if n.tg != nil && u.TelegramChatID != nil {
		if err := n.tg.SendMessage(*u.TelegramChatID, "Пароль вашего аккаунта был изменён."); err != nil {
			log.Printf("[notify][tg] send failed user_id=%d: %v", u.ID, err)
		}
	}
	if n.email != nil && u.Email != nil {
		if err := n.email.SendPasswordChanged(*u.Email); err != nil {
			log.Printf("[notify][email] send failed user_id=%d: %v", u.ID, err)
		}
	}
}

// NopNotifier — заглушка для тестов и окружений без каналов доставки.
type NopNotifier struct{}

func (NopNotifier) SendCode(string, string)             {}
func (NopNotifier) SendCodeToUser(*models.User, string) {}
func (NopNotifier) SendPasswordChanged(*models.User)    {}
