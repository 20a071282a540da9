package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the mail server parameters, loaded from the settings store.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// Service sends plain-text receipt emails over SMTP.
type Service struct {
	config SMTPConfig
}

// NewService creates an email service from SMTP configuration.
func NewService(config SMTPConfig) *Service {
	return &Service{config: config}
}

// Configured reports whether enough SMTP parameters are present to send mail.
func (s *Service) Configured() bool {
	return s.config.Host != "" && s.config.Username != ""
}

// SendReceipt mails a rendered text receipt to the given address. The body is
// the text renderer's output verbatim, wrapped in a monospace-friendly
// plain-text message.
func (s *Service) SendReceipt(to, billNumber, receiptText string) error {
	if !s.Configured() {
		return fmt.Errorf("email: SMTP is not configured")
	}

	port := s.config.Port
	if port == "" {
		port = "587"
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.config.Username)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: Receipt %s\r\n", billNumber)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(receiptText)
	msg.WriteString("\r\n")

	addr := s.config.Host + ":" + port
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.Username, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("email: failed to send receipt: %w", err)
	}
	return nil
}
