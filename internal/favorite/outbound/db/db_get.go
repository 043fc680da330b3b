package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
)

const queryListFavoritesByAccount = `
SELECT id, account_id, meal_id, meal_name, meal_image, created_at
FROM favorites
WHERE account_id = $1
ORDER BY created_at DESC
`

func (s *DB) ListFavoritesByAccount(ctx context.Context, accountID int64) (_ []entity.Favorite, err error) {
	ctx, span := s.startSpan(ctx, "ListFavoritesByAccount")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListFavoritesByAccount, accountID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var favorites []entity.Favorite
	for rows.Next() {
		var fav entity.Favorite
		if err = rows.Scan(
			&fav.ID,
			&fav.AccountID,
			&fav.MealID,
			&fav.MealName,
			&fav.MealImage,
			&fav.CreatedAt,
		); err != nil {
			return nil, s.mapError(err)
		}
		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return favorites, nil
}
