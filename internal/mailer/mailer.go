package mailer

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/adityavk/portfolio-server/internal/config"
)

// Mailer delivers transactional mail (currently only the password-reset
// message).
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through a plain SMTP relay with login auth.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// ResetPasswordEmail renders the recovery message around the one-time link.
func ResetPasswordEmail(resetURL string) string {
	return "You requested a password reset for your portfolio dashboard.\n\n" +
		"Open the link below to choose a new password. The link is valid for 15 minutes\n" +
		"and can be used only once:\n\n" +
		resetURL + "\n\n" +
		"If you did not request this, you can safely ignore this email."
}
