package mail

import (
	"context"
	"io"
)

// Message is a provider-agnostic email payload. When both bodies are set the
// sender builds a multipart/alternative message; otherwise whichever body is
// present is sent on its own.
type Message struct {
	// From overrides the configured default sender when set.
	From     string
	To       []string
	Cc       []string
	Bcc      []string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mail sends email. The notification module depends on this interface so the
// delivery mechanism can be swapped without touching usecase code.
type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}
