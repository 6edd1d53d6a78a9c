package gateway

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/reelboard/reelboard/internal/pkg/logger"
	"github.com/reelboard/reelboard/internal/pkg/models"
)

// SMTPMailer delivers OTP emails over SMTP.
type SMTPMailer struct {
	cfg    models.SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTP mailer instance
func NewSMTPMailer(cfg models.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendOTP emails the reset code. The send is synchronous; the caller decides
// what a delivery failure means for the reset flow.
func (m *SMTPMailer) SendOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password Reset OTP")

	minutes := int(time.Until(expiresAt).Round(time.Minute).Minutes())
	if minutes < 1 {
		minutes = 1
	}
	body := fmt.Sprintf(
		"Your password reset OTP is: %s\n\nThis code is valid for %d minutes. If you did not request a password reset, you can ignore this email.",
		code, minutes)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send OTP email: %w", err)
		}
		logger.Info("OTP email sent", logger.String("email", email))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("OTP email send canceled: %w", ctx.Err())
	}
}
