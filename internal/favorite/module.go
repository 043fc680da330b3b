package favorite

import (
	"github.com/anshy0304/veggiefinder/internal/favorite/inbound"
	"github.com/anshy0304/veggiefinder/internal/favorite/outbound/db"
	"github.com/anshy0304/veggiefinder/internal/favorite/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbFavorite := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbFavorite,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
