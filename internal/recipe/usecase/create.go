package usecase

import (
	"context"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

type CreateInput struct {
	Name         string   `validate:"required,max=150"`
	Cuisine      string   `validate:"omitempty,max=50"`
	Instructions string   `validate:"required"`
	Ingredients  []string `validate:"required,min=1,dive,required"`
}

type CreateOutput struct {
	ID int64
}

func (s *Usecase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Cuisine == "" {
		in.Cuisine = entity.CuisineVegetarian
	}

	id := s.uid.Generate()
	if err := s.repoDB.CreateRecipe(ctx, entity.NewRecipe{
		ID:           id,
		AccountID:    accountID,
		Name:         in.Name,
		Cuisine:      in.Cuisine,
		Instructions: in.Instructions,
		Ingredients:  in.Ingredients,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create recipe", "account_id", accountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CreateOutput{ID: id}, nil
}
