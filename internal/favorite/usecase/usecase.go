package usecase

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListFavoritesByAccount(ctx context.Context, accountID int64) ([]entity.Favorite, error)
	CreateFavorite(ctx context.Context, in entity.NewFavorite) error
	DeleteFavorite(ctx context.Context, favoriteID, accountID int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("favorite.usecase").Start(ctx, name)
}

func (s *Usecase) callerID(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return 0, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	return clm.UserID, nil
}
