package usecase

import (
	"context"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
	"github.com/samber/lo"
)

type SearchMealsInput struct {
	Query string `validate:"required,max=100"`
}

type SearchMealsOutput struct {
	Meals []entity.Meal
}

func (s *Usecase) SearchMeals(ctx context.Context, in SearchMealsInput) (*SearchMealsOutput, error) {
	ctx, span := s.startSpan(ctx, "SearchMeals")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	local, err := s.repoDB.SearchRecipesByName(ctx, in.Query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo search recipes", "query", in.Query, "error", err)
		return nil, goerror.NewServer(err)
	}

	remote, err := s.meals.Search(ctx, in.Query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to search mealdb", "query", in.Query, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SearchMealsOutput{Meals: mergeMeals(local, remote)}, nil
}

// mergeMeals lists local recipes first and drops remote records whose
// ID collides with a local one. Local wins.
func mergeMeals(local []entity.Recipe, remote []entity.Meal) []entity.Meal {
	meals := lo.Map(local, func(r entity.Recipe, _ int) entity.Meal {
		return r.AsMeal()
	})

	taken := lo.KeyBy(meals, func(m entity.Meal) string {
		return m.ID
	})
	remote = lo.Filter(remote, func(m entity.Meal, _ int) bool {
		_, dup := taken[m.ID]
		return !dup
	})

	return append(meals, remote...)
}
