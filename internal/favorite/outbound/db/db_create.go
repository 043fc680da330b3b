package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
)

const queryCreateFavorite = `
INSERT INTO favorites (id, account_id, meal_id, meal_name, meal_image)
VALUES ($1, $2, $3, $4, $5)
`

// CreateFavorite relies on the unique (account_id, meal_id) index for
// duplicate detection.
func (s *DB) CreateFavorite(ctx context.Context, in entity.NewFavorite) (err error) {
	ctx, span := s.startSpan(ctx, "CreateFavorite")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateFavorite,
		in.ID, in.AccountID, in.MealID, in.MealName, in.MealImage,
	)
	err = s.mapError(err)
	return err
}
