package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/pkg/valueobject"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

const queryCreateRecipe = `
INSERT INTO recipes (id, account_id, name, cuisine, instructions, ingredients, image_url)
VALUES ($1, $2, $3, $4, $5, $6, '')
`

func (s *DB) CreateRecipe(ctx context.Context, in entity.NewRecipe) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRecipe")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateRecipe,
		in.ID, in.AccountID, in.Name, in.Cuisine, in.Instructions, valueobject.JSONStrings(in.Ingredients),
	)
	err = s.mapError(err)
	return err
}
