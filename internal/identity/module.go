package identity

import (
	"github.com/anshy0304/veggiefinder/internal/identity/inbound"
	"github.com/anshy0304/veggiefinder/internal/identity/outbound/db"
	"github.com/anshy0304/veggiefinder/internal/identity/outbound/mq"
	"github.com/anshy0304/veggiefinder/internal/identity/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/clock"
	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/hash"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/messaging"
	"github.com/anshy0304/veggiefinder/internal/pkg/otp"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Hasher     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Hasher:        dep.Hasher,
		UID:           dep.UID,
		UUID:          dep.UUID,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
