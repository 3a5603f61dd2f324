package external_services

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/zeecare/hms-backend/internal/domain/contract"
	"github.com/zeecare/hms-backend/internal/infrastructure/config"
)

// SMTPMailer delivers patient notifications over an authenticated SMTP relay.
type SMTPMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ contract.IEmailService = (*SMTPMailer)(nil)

// NewSMTPMailer returns nil when no relay host is configured.
func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	return &SMTPMailer{
		addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		auth:     smtp.PlainAuth("", cfg.Username, cfg.AppPassword, cfg.Host),
		from:     cfg.From,
		sendMail: smtp.SendMail,
	}
}

func (m *SMTPMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return fmt.Errorf("header injection attempt in recipient or subject")
	}
	if err := m.sendMail(m.addr, m.auth, m.from, []string{to}, composeMessage(m.from, to, subject, body)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func composeMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
