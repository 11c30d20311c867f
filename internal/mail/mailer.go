// Package mail dispatches reset-code messages. The workflow layer depends
// only on the Mailer interface; the SMTP transport is an injected
// collaborator chosen at startup.
package mail

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"servicehp-backend/internal/config"
)

// Mailer delivers a password-reset code to an address.
type Mailer interface {
	SendResetCode(to, code string) error
}

// New returns an SMTP mailer when an SMTP host is configured, otherwise a
// mailer that only logs (development fallback).
func New(cfg *config.Config) Mailer {
	if cfg.SMTP.Host == "" {
		log.Println("mailer: SMTP not configured, logging mails instead")
		return &logMailer{}
	}
	log.Printf("mailer: using SMTP %s", cfg.SMTP.Host)
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) SendResetCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Service HP - Reset Password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Anda meminta reset password untuk akun ini.\nKode reset: %s\nKode berlaku selama 15 menit.\n\nJika Anda tidak meminta reset password, abaikan pesan ini.", code))
	return m.dialer.DialAndSend(msg)
}

type logMailer struct{}

func (m *logMailer) SendResetCode(to, code string) error {
	log.Printf("[mail] to=%s reset code=%s", to, code)
	return nil
}
