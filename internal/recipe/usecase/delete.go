package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

type DeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.DeleteRecipe(ctx, in.ID, accountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Recipe not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete recipe", "recipe_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
