// Package mailer sends transactional mail over SMTP. The only template
// today is the password-reset link.
package mailer

import (
	"medibase/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends HTML mail through the configured SMTP relay. It satisfies
// auth.Mailer.
type Mailer struct {
	cfg config.Config
}

// New creates a new Mailer
func New(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one HTML message. Dialing happens per message; the reset
// flow is low-volume enough that a pooled sender is not worth the keepalive
// handling.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)
	return d.DialAndSend(msg)
}
