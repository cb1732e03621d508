package accounts

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"recruit-backend/internal/shared/telemetry"
)

// Mailer delivers verification emails.
type Mailer interface {
	SendOTP(to, code string) error
}

// SMTPMailer sends OTP emails over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer constructs an SMTP-backed mailer.
func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "HR Recruitment Portal Verification OTP")
	msg.SetBody("text/html", fmt.Sprintf(`
        <h2>HR Recruitment Portal Email Verification</h2>
        <p>Your OTP for email verification is: <strong>%s</strong></p>
        <p>This code will expire in 15 minutes.</p>
        <p>Welcome to the HR Recruitment Portal!</p>
    `, code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send otp mail to %s: %w", to, err)
	}
	return nil
}

// LogMailer logs instead of sending. Used when SMTP is not configured (dev, tests).
type LogMailer struct{}

func (LogMailer) SendOTP(to, code string) error {
	telemetry.Info("otp.mail.skipped", map[string]any{"to": to})
	return nil
}
