package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/anshy0304/veggiefinder/internal/notification/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/goroutine"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/messaging"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

type uc interface {
	ConsumeOTPIssued(ctx context.Context, in usecase.ConsumeOTPIssuedInput) error
	ConsumeAccountVerified(ctx context.Context, in usecase.ConsumeAccountVerifiedInput) error
}

// subscription binds a broker topic to a handler. The name doubles as
// channel, queue group and subscription id depending on the driver.
type subscription struct {
	name    string
	topic   string
	handler messaging.Handler
}

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	subs := []subscription{
		{
			name:    event.OTPIssuedDestinationConsumerNotification,
			topic:   event.OTPIssuedDestination,
			handler: mqHandler.OTPIssuedNotification,
		},
		{
			name:    event.AccountVerifiedDestinationConsumerNotification,
			topic:   event.AccountVerifiedDestination,
			handler: mqHandler.AccountVerifiedNotification,
		},
	}

	enabled := cfg.GetArray("modules.notification.consumer_names")
	for _, sub := range subs {
		if !slices.Contains(enabled, sub.name) {
			continue
		}

		routine.Go(ctx, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "starting consumer", "consumer", sub.name, "topic", sub.topic)
			return messenger.Consume(pCtx,
				sub.topic,
				sub.handler,
				messaging.WithChannel(sub.name),
				messaging.WithQueueGroup(sub.name),
				messaging.WithGroup(sub.name),
				messaging.WithSubscription(sub.name),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(10),
				messaging.WithMaxInFlight(10),
			)
		})
	}
}
