package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendResetCode(email, code string) error
	SendPasswordChanged(email string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendResetCode(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Код для сброса пароля")

	body := fmt.Sprintf(`
		<h3>Сброс пароля</h3>
		<p>Мы получили запрос на сброс пароля вашего аккаунта.</p>
		<p>Код подтверждения: <strong>%s</strong></p>
		<p>Код действует 10 минут. Если вы не запрашивали сброс, проигнорируйте это письмо.</p>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reset code email: %w", err)
	}

	return nil
}

func (s *emailService) SendPasswordChanged(email string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Пароль изменён")

	body := `
		<h3>Пароль вашего аккаунта был изменён</h3>
		<p>Если это были не вы, немедленно запросите сброс пароля.</p>
	`

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password changed email: %w", err)
	}

	return nil
}
