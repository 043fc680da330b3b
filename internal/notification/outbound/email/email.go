package email

import (
	"context"
	"errors"

	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNoRecipient is returned when a message has no To addresses.
var ErrNoRecipient = errors.New("email: message has no recipient")

type Email struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Email {
	return &Email{client: client, ins: ins}
}

func (e *Email) Send(ctx context.Context, msg mail.Message) error {
	ctx, span := e.ins.Tracer("notification.outbound.email").Start(ctx, "Send")
	defer span.End()

	span.SetAttributes(
		attribute.Int("email.recipients", len(msg.To)),
		attribute.String("email.subject", msg.Subject),
	)

	if len(msg.To) == 0 {
		span.SetStatus(codes.Error, ErrNoRecipient.Error())
		return ErrNoRecipient
	}

	if err := e.client.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
