package usecase

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/storage"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListRecipesByAccount(ctx context.Context, accountID int64) ([]entity.Recipe, error)
	SearchRecipesByName(ctx context.Context, query string) ([]entity.Recipe, error)
	ListRecipesByCuisine(ctx context.Context, cuisine string) ([]entity.Recipe, error)
	CreateRecipe(ctx context.Context, in entity.NewRecipe) error
	UpdateRecipe(ctx context.Context, in entity.NewRecipe) error
	DeleteRecipe(ctx context.Context, recipeID, accountID int64) error
	SetRecipeImage(ctx context.Context, recipeID, accountID int64, imageURL string) error
}

type mealFinder interface {
	Search(ctx context.Context, query string) ([]entity.Meal, error)
	FilterByCategory(ctx context.Context, category string) ([]entity.Meal, error)
}

type Usecase struct {
	repoDB    repoDB
	meals     mealFinder
	storage   storage.Storage
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	uuid      uid.StringID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Meals      mealFinder
	Storage    storage.Storage
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	UUID       uid.StringID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		meals:     dep.Meals,
		storage:   dep.Storage,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		uuid:      dep.UUID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("recipe.usecase").Start(ctx, name)
}

func (s *Usecase) callerID(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return 0, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	return clm.UserID, nil
}
