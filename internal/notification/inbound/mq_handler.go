package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/notification/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/messaging"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

// ensureCorrelationID propagates the publisher's correlation id when
// present, otherwise mints a fresh one for this delivery.
func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

// consume decodes the body into T and hands it to apply. A body that
// fails to decode is dropped without requeue since redelivery can
// never fix a malformed payload.
func consume[T any](h *MQHandler, ctx context.Context, msg messaging.Message, name string, apply func(context.Context, T) error) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, name)
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: "+name, "msg_body", string(body))

	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "dropping undecodable message", "handler", name, "msg_body", string(body), "error", err)
		return nil
	}

	if err := apply(ctx, payload); err != nil {
		slog.ErrorContext(ctx, "failed to process message", "handler", name, "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) OTPIssuedNotification(ctx context.Context, msg messaging.Message) error {
	return consume(h, ctx, msg, "OTPIssuedNotification", func(ctx context.Context, p event.OTPIssuedMessage) error {
		return h.uc.ConsumeOTPIssued(ctx, usecase.ConsumeOTPIssuedInput{
			EventID:          p.EventID,
			AccountID:        p.AccountID,
			Email:            p.Email,
			OTP:              p.OTP,
			Purpose:          p.Purpose,
			ExpiresInMinutes: p.ExpiresInMinutes,
		})
	})
}

func (h *MQHandler) AccountVerifiedNotification(ctx context.Context, msg messaging.Message) error {
	return consume(h, ctx, msg, "AccountVerifiedNotification", func(ctx context.Context, p event.AccountVerifiedMessage) error {
		return h.uc.ConsumeAccountVerified(ctx, usecase.ConsumeAccountVerifiedInput{
			EventID:   p.EventID,
			AccountID: p.AccountID,
			Email:     p.Email,
		})
	})
}
