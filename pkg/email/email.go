package email

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
)

// SMTPMailer delivers outbound messages over SMTP. It implements
// domain.Mailer.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
}

// NewSMTPMailer creates a mailer from the SMTP block of the configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Send delivers one message. The returned error's text is the transport's
// failure detail, suitable for surfacing to the operator.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.OutboundMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := mail.Address{Name: msg.FromDisplayName, Address: msg.From}

	// Construct MIME message
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from.String())
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, msg.From, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
