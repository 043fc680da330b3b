package db

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

const recipeColumns = `id, account_id, name, cuisine, instructions, ingredients, image_url, created_at, updated_at`

const queryListRecipesByAccount = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE account_id = $1
ORDER BY created_at DESC
`

func (s *DB) ListRecipesByAccount(ctx context.Context, accountID int64) (_ []entity.Recipe, err error) {
	ctx, span := s.startSpan(ctx, "ListRecipesByAccount")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListRecipesByAccount, accountID)
	if err != nil {
		return nil, s.mapError(err)
	}

	recipes, err := s.scanRecipes(rows)
	if err != nil {
		return nil, s.mapError(err)
	}

	return recipes, nil
}

const querySearchRecipesByName = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE name ILIKE '%' || $1 || '%'
ORDER BY name
`

// SearchRecipesByName matches across all accounts. Browsing is public.
func (s *DB) SearchRecipesByName(ctx context.Context, query string) (_ []entity.Recipe, err error) {
	ctx, span := s.startSpan(ctx, "SearchRecipesByName")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, querySearchRecipesByName, query)
	if err != nil {
		return nil, s.mapError(err)
	}

	recipes, err := s.scanRecipes(rows)
	if err != nil {
		return nil, s.mapError(err)
	}

	return recipes, nil
}

const queryListRecipesByCuisine = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE LOWER(cuisine) = LOWER($1)
ORDER BY name
`

func (s *DB) ListRecipesByCuisine(ctx context.Context, cuisine string) (_ []entity.Recipe, err error) {
	ctx, span := s.startSpan(ctx, "ListRecipesByCuisine")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListRecipesByCuisine, cuisine)
	if err != nil {
		return nil, s.mapError(err)
	}

	recipes, err := s.scanRecipes(rows)
	if err != nil {
		return nil, s.mapError(err)
	}

	return recipes, nil
}
