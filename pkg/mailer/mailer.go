package mailer

import (
	"context"
	"fmt"

	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer dispatches one-time codes to users.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// SMTPMailer sends OTP mails through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Goppo Soppo Verification OTP")
	msg.SetBody("text/plain",
		fmt.Sprintf("Your OTP for Goppo Soppo is: %s. It expires in 10 minutes.", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send OTP mail", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("send OTP to %s: %w", email, err)
	}

	m.log.Info("OTP mail sent", zap.String("email", email))
	return nil
}

// LogMailer logs the code instead of sending mail. Used in development
// when SMTP is not configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log.With(zap.String("mailer", "log"))}
}

func (m *LogMailer) SendOTP(ctx context.Context, email, code string) error {
	m.log.Info("OTP generated (mail delivery disabled)",
		zap.String("email", email),
		zap.String("otp_code", code),
	)
	return nil
}

// FromConfig picks the SMTP mailer when a host is configured, the log
// mailer otherwise.
func FromConfig(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		return NewLogMailer(log)
	}
	return NewSMTPMailer(config, log)
}
