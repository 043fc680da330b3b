package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

type UpdateInput struct {
	ID           int64    `validate:"required,gt=0"`
	Name         string   `validate:"required,max=150"`
	Cuisine      string   `validate:"omitempty,max=50"`
	Instructions string   `validate:"required"`
	Ingredients  []string `validate:"required,min=1,dive,required"`
}

func (s *Usecase) Update(ctx context.Context, in UpdateInput) error {
	ctx, span := s.startSpan(ctx, "Update")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.Cuisine == "" {
		in.Cuisine = entity.CuisineVegetarian
	}

	err = s.repoDB.UpdateRecipe(ctx, entity.NewRecipe{
		ID:           in.ID,
		AccountID:    accountID,
		Name:         in.Name,
		Cuisine:      in.Cuisine,
		Instructions: in.Instructions,
		Ingredients:  in.Ingredients,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Recipe not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update recipe", "recipe_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
