package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

const queryDeleteRecipe = `
DELETE FROM recipes
WHERE id = $1 AND account_id = $2
`

func (s *DB) DeleteRecipe(ctx context.Context, recipeID, accountID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteRecipe")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteRecipe, recipeID, accountID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
