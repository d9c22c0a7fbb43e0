package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"wealthwise/config"
)

// SMTPMailer sends login links through a plain SMTP relay.
type SMTPMailer struct {
	cfg *config.MailConfig
}

func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendLoginLink(ctx context.Context, toEmail, toName, link string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: WealthWise Portal <%s>\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s <%s>\r\n", toName, toEmail)
	b.WriteString("Subject: Your WealthWise login link\r\n")
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", toName)
	fmt.Fprintf(&b, "Use this secure link to access your dashboard:\r\n\r\n%s\r\n\r\n", link)
	b.WriteString("The link is valid for a single login and expires soon. If you did not request it, you can ignore this email.\r\n")

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	var a smtp.Auth
	if m.cfg.Username != "" {
		a = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, a, m.cfg.From, []string{toEmail}, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
