package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"coursehub/internal/repositories"
)

const linkCodeTTL = 15 * time.Minute

// TelegramService — доставка кодов в привязанный чат и обработка
// привязки через deep-link: /start <code>.
type TelegramService struct {
	bot      *tgbotapi.BotAPI
	links    repositories.TelegramLinkRepository
	userRepo repositories.UserRepository
}

func NewTelegramService(botToken string, links repositories.TelegramLinkRepository, userRepo repositories.UserRepository) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	log.Printf("[tg] bot authorized as @%s", bot.Self.UserName)
	return &TelegramService{bot: bot, links: links, userRepo: userRepo}, nil
}

func (t *TelegramService) SendMessage(chatID int64, text string) error {
	if t == nil || chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// RequestLink — одноразовый код привязки и deep-link для пользователя.
func (t *TelegramService) RequestLink(ctx context.Context, userID int, code string) (string, error) {
	if err := t.links.Issue(ctx, userID, code, time.Now().Add(linkCodeTTL)); err != nil {
		return "", fmt.Errorf("issue link code: %w", err)
	}
	return fmt.Sprintf("https://t.me/%s?start=%s", t.bot.Self.UserName, code), nil
}

// HandleUpdate — вебхук бота. Интересует только /start <code>.
func (t *TelegramService) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() || update.Message.Command() != "start" {
		return
	}
	code := strings.TrimSpace(update.Message.CommandArguments())
	chatID := update.Message.Chat.ID
	if code == "" {
		_ = t.SendMessage(chatID, "Откройте ссылку привязки из приложения ещё раз.")
		return
	}

	link, err := t.links.Consume(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = t.SendMessage(chatID, "Код привязки не найден или истёк.")
			return
		}
		log.Printf("[tg][link] use code failed: %v", err)
		return
	}

	if err := t.userRepo.SetTelegramChat(link.UserID, chatID); err != nil {
		log.Printf("[tg][link] save chat failed user_id=%d: %v", link.UserID, err)
		return
	}
	log.Printf("[tg][link] linked user_id=%d chat_id=%d", link.UserID, chatID)
	_ = t.SendMessage(chatID, "Готово! Коды подтверждения будут приходить сюда.")
}
