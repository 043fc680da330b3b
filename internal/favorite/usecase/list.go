package usecase

import (
	"context"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

type ListOutput struct {
	Favorites []entity.Favorite
}

func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	favorites, err := s.repoDB.ListFavoritesByAccount(ctx, accountID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list favorites", "account_id", accountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Favorites: favorites}, nil
}
