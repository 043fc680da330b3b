package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

const queryDeleteFavorite = `
DELETE FROM favorites
WHERE id = $1 AND account_id = $2
`

func (s *DB) DeleteFavorite(ctx context.Context, favoriteID, accountID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteFavorite")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteFavorite, favoriteID, accountID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
