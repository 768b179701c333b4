// Package mail implements the outbound Mailer port over SMTP (Brevo in
// production). One dial-and-send per call; delivery failures are returned
// to the caller and never retried here.
package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Config carries the SMTP relay settings.
type Config struct {
	Host        string
	Port        int
	User        string
	Pass        string
	SenderName  string
	SenderEmail string
}

// SMTPMailer sends HTML mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	cfg    Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		cfg:    cfg,
	}
}

// Send delivers a single message and returns its Message-ID. The id is
// generated locally so callers can report it even though the SMTP
// conversation does not echo one back.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Host)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.SenderEmail, m.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return messageID, nil
}
