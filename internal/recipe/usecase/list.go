package usecase

import (
	"context"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

type ListOutput struct {
	Recipes []entity.Recipe
}

func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	recipes, err := s.repoDB.ListRecipesByAccount(ctx, accountID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list recipes", "account_id", accountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Recipes: recipes}, nil
}
