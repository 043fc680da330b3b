package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/idempotency"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoMail  repoMail
	idemp     idempotency.Idempotency
	cfg       config.Config
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoMail    repoMail
	Idempotency idempotency.Idempotency
	Config      config.Config
	Validator   validator.Validator
	Instrument  instrument.Instrumentation
}

func NewNotification(dep Dependency) *Usecase {
	return &Usecase{
		repoMail:  dep.RepoMail,
		idemp:     dep.Idempotency,
		cfg:       dep.Config,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

// sendEmailOnce delivers at most one email per event. Broker redelivery
// hits the completed idempotency state and becomes a no-op.
func (s *Usecase) sendEmailOnce(ctx context.Context, eventID string, msg mail.Message) error {
	stateTTL := s.cfg.GetHour("modules.notification.idempotency_ttl_hours")

	err := s.idemp.Exec(ctx, "notification:email:"+eventID, func(ctx context.Context) error {
		return s.repoMail.Send(ctx, msg)
	}, idempotency.WithStateTTL(stateTTL), idempotency.WithLockDuration(time.Minute))

	if errors.Is(err, idempotency.ErrAlreadyCompleted) || errors.Is(err, idempotency.ErrAlreadyInProgress) {
		slog.InfoContext(ctx, "duplicate email event skipped", "event_id", eventID)
		return nil
	}

	return err
}
