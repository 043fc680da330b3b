package notification

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/notification/inbound"
	"github.com/anshy0304/veggiefinder/internal/notification/outbound/email"
	"github.com/anshy0304/veggiefinder/internal/notification/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/goroutine"
	"github.com/anshy0304/veggiefinder/internal/pkg/idempotency"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
	"github.com/anshy0304/veggiefinder/internal/pkg/messaging"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
)

type Dependency struct {
	Ctx         context.Context            `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewNotification(usecase.Dependency{
		RepoMail:    repoMail,
		Idempotency: dep.Idempotency,
		Config:      dep.Config,
		Validator:   dep.Validator,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
