package mail

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var (
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	ErrSMTPNoRecipients     = errors.New("no recipients provided")
	ErrSMTPNoSender         = errors.New("no sender provided")
)

// SMTPConfig configures the SMTP sender. Username and Password are optional;
// when either is empty the connection goes unauthenticated, which local
// mailcatchers expect.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the default sender used when Message.From is empty.
	From string
}

// SMTP delivers mail through net/smtp.
type SMTP struct {
	addr        string
	defaultFrom string
	auth        smtp.Auth
}

// NewSMTP builds the SMTP sender.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTP{
		addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		defaultFrom: cfg.From,
		auth:        auth,
	}, nil
}

// Send assembles the RFC 5322 message and hands it to smtp.SendMail. Bcc
// recipients go on the envelope only, never into headers.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	envelope := make([]string, 0, len(msg.To)+len(msg.Cc)+len(msg.Bcc))
	envelope = append(envelope, msg.To...)
	envelope = append(envelope, msg.Cc...)
	envelope = append(envelope, msg.Bcc...)
	if len(envelope) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.defaultFrom
	}
	if from == "" {
		return ErrSMTPNoSender
	}

	var raw strings.Builder
	fmt.Fprintf(&raw, "From: %s\r\n", from)
	fmt.Fprintf(&raw, "To: %s\r\n", strings.Join(msg.To, ", "))
	if len(msg.Cc) > 0 {
		fmt.Fprintf(&raw, "Cc: %s\r\n", strings.Join(msg.Cc, ", "))
	}
	fmt.Fprintf(&raw, "Subject: %s\r\n", msg.Subject)
	raw.WriteString("MIME-Version: 1.0\r\n")

	body, contentType := encodeBody(msg)
	fmt.Fprintf(&raw, "Content-Type: %s\r\n\r\n", contentType)
	raw.WriteString(body)

	if err := ctx.Err(); err != nil {
		return err
	}
	return smtp.SendMail(s.addr, s.auth, from, envelope, []byte(raw.String()))
}

// Close satisfies mail.Mail; net/smtp keeps no persistent connection.
func (s *SMTP) Close() error { return nil }

func encodeBody(msg Message) (body, contentType string) {
	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		boundary := newBoundary()
		var sb strings.Builder
		sb.WriteString("This is a multipart message in MIME format.\r\n")
		fmt.Fprintf(&sb, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.TextBody)
		fmt.Fprintf(&sb, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, msg.HTMLBody)
		fmt.Fprintf(&sb, "--%s--", boundary)
		return sb.String(), "multipart/alternative; boundary=" + boundary
	case msg.HTMLBody != "":
		return msg.HTMLBody, "text/html; charset=UTF-8"
	default:
		return msg.TextBody, "text/plain; charset=UTF-8"
	}
}

func newBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "veggiefinder-boundary-fallback"
	}
	return "veggiefinder-boundary-" + hex.EncodeToString(b[:])
}
