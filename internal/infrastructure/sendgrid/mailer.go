// Package sendgrid sends transactional email through the SendGrid API.
package sendgrid

import (
	"fmt"

	"github.com/quant-backend/internal/config"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, html string) error
}

type mailer struct {
	client   *sg.Client
	from     string
	fromName string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		client:   sg.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.EmailFrom,
		fromName: cfg.EmailFromName,
	}
}

func (m *mailer) SendEmail(to, subject, html string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.from),
		subject,
		mail.NewEmail("", to),
		"", // plain-text part unused; clients all render HTML
		html,
	)
	resp, err := m.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
