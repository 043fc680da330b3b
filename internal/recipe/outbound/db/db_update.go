package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/valueobject"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

const queryUpdateRecipe = `
UPDATE recipes
SET name = $3, cuisine = $4, instructions = $5, ingredients = $6, updated_at = NOW()
WHERE id = $1 AND account_id = $2
`

// UpdateRecipe enforces ownership in the predicate. A foreign recipe
// looks like a missing one.
func (s *DB) UpdateRecipe(ctx context.Context, in entity.NewRecipe) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateRecipe")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateRecipe,
		in.ID, in.AccountID, in.Name, in.Cuisine, in.Instructions, valueobject.JSONStrings(in.Ingredients),
	)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

const querySetRecipeImage = `
UPDATE recipes
SET image_url = $3, updated_at = NOW()
WHERE id = $1 AND account_id = $2
`

func (s *DB) SetRecipeImage(ctx context.Context, recipeID, accountID int64, imageURL string) (err error) {
	ctx, span := s.startSpan(ctx, "SetRecipeImage")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, querySetRecipeImage, recipeID, accountID, imageURL)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
