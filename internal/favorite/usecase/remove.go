package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

type RemoveInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) Remove(ctx context.Context, in RemoveInput) error {
	ctx, span := s.startSpan(ctx, "Remove")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.DeleteFavorite(ctx, in.ID, accountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Favorite not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete favorite", "favorite_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
