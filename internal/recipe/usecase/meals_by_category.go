package usecase

import (
	"context"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

type MealsByCategoryInput struct {
	Category string `validate:"required,max=50"`
}

type MealsByCategoryOutput struct {
	Meals []entity.Meal
}

func (s *Usecase) MealsByCategory(ctx context.Context, in MealsByCategoryInput) (*MealsByCategoryOutput, error) {
	ctx, span := s.startSpan(ctx, "MealsByCategory")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	local, err := s.repoDB.ListRecipesByCuisine(ctx, in.Category)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list recipes by cuisine", "category", in.Category, "error", err)
		return nil, goerror.NewServer(err)
	}

	remote, err := s.meals.FilterByCategory(ctx, in.Category)
	if err != nil {
		slog.ErrorContext(ctx, "failed to filter mealdb by category", "category", in.Category, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MealsByCategoryOutput{Meals: mergeMeals(local, remote)}, nil
}
