package recipe

import (
	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
	"github.com/anshy0304/veggiefinder/internal/pkg/storage"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"github.com/anshy0304/veggiefinder/internal/recipe/inbound"
	"github.com/anshy0304/veggiefinder/internal/recipe/outbound/db"
	"github.com/anshy0304/veggiefinder/internal/recipe/outbound/mealdb"
	"github.com/anshy0304/veggiefinder/internal/recipe/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbRecipe := db.NewDB(dep.DBConn, dep.Instrument)
	mealClient := mealdb.New(dep.Config, dep.CacheConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbRecipe,
		Meals:      mealClient,
		Storage:    dep.Storage,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
