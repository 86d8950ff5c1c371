package email

import (
	"fmt"

	"fitstream_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail over SMTP via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendPasswordReset(to, name, resetLink, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password recovery")
	m.SetBody("text/html", passwordResetBody(name, resetLink, token))

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
