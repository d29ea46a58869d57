package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// EskizClient — отправка SMS через Eskiz (eskiz.uz).
type EskizClient struct {
	Token  string // bearer-токен кабинета
	Sender string // опционально, например "4546"
	DryRun bool   // dry-run режим: логируем вместо отправки

	client *http.Client
}

type eskizSendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func NewEskizClient(token, sender string, dryRun bool) *EskizClient {
	return &EskizClient{Token: token, Sender: sender, DryRun: dryRun, client: &http.Client{}}
}

// SendSMS — отправка сообщения (или имитация в dry-run).
func (c *EskizClient) SendSMS(phone, text string) error {
	// DRY-RUN: не делаем HTTP-запрос
	if c.DryRun || c.Token == "" || c.Token == "dry-run" {
		fmt.Printf("📩 [Eskiz][dry-run] to=%s sender=%q text=%q\n", phone, c.Sender, text)
		return nil
	}

	apiURL := "https://notify.eskiz.uz/api/message/sms/send"

	form := url.Values{
		"mobile_phone": {phone},
		"message":      {text},
	}
	if c.Sender != "" {
		form.Set("from", c.Sender)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send SMS request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result eskizSendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if result.Status != "waiting" && result.Status != "success" {
		return fmt.Errorf("eskiz returned status: %s (%s)", result.Status, result.Message)
	}
	return nil
}
