package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

type AddInput struct {
	MealID    string `validate:"required,max=50"`
	MealName  string `validate:"required,max=150"`
	MealImage string `validate:"omitempty,url"`
}

type AddOutput struct {
	ID int64
}

func (s *Usecase) Add(ctx context.Context, in AddInput) (*AddOutput, error) {
	ctx, span := s.startSpan(ctx, "Add")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	id := s.uid.Generate()
	err = s.repoDB.CreateFavorite(ctx, entity.NewFavorite{
		ID:        id,
		AccountID: accountID,
		MealID:    in.MealID,
		MealName:  in.MealName,
		MealImage: in.MealImage,
	})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Already in favorites.", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create favorite", "account_id", accountID, "meal_id", in.MealID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AddOutput{ID: id}, nil
}
