package mq

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/anshy0304/veggiefinder/internal/identity/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/messaging"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

const correlationHeader = "cID"

// Messaging publishes identity events for the notification module to
// consume. The correlation ID travels as a message header so consumer logs
// join up with the originating request.
type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishOTPIssued(ctx context.Context, msg usecase.OTPIssuedEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishOTPIssued")
	defer span.End()

	return m.publish(ctx, span, event.OTPIssuedDestination, event.OTPIssuedMessage{
		EventID:          msg.EventID,
		AccountID:        msg.AccountID,
		Email:            msg.Email,
		OTP:              msg.OTP,
		Purpose:          msg.Purpose,
		ExpiresInMinutes: msg.ExpiresInMinutes,
	})
}

func (m *Messaging) PublishAccountVerified(ctx context.Context, msg usecase.AccountVerifiedEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishAccountVerified")
	defer span.End()

	return m.publish(ctx, span, event.AccountVerifiedDestination, event.AccountVerifiedMessage{
		EventID:   msg.EventID,
		AccountID: msg.AccountID,
		Email:     msg.Email,
	})
}

func (m *Messaging) publish(ctx context.Context, span trace.Span, destination string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cid := instrument.GetCorrelationID(ctx)
	_, err = m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: correlationHeader, Value: []byte(cid)}},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
