package entity

import (
	"strconv"
	"time"

	"github.com/anshy0304/veggiefinder/internal/pkg/valueobject"
)

// CuisineVegetarian is the default cuisine for user-submitted recipes.
const CuisineVegetarian = "Vegetarian"

type Recipe struct {
	ID           int64
	AccountID    int64
	Name         string
	Cuisine      string
	Instructions string
	Ingredients  valueobject.JSONStrings
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AsMeal projects a local recipe into the browse read model shared
// with TheMealDB records.
func (r Recipe) AsMeal() Meal {
	return Meal{
		ID:           strconv.FormatInt(r.ID, 10),
		Name:         r.Name,
		Thumbnail:    r.ImageURL,
		Category:     r.Cuisine,
		Instructions: r.Instructions,
	}
}

// Meal is the read model for browsing. Both TheMealDB records and
// local recipes are served in this shape.
type Meal struct {
	ID           string
	Name         string
	Thumbnail    string
	Category     string
	Instructions string
}

type NewRecipe struct {
	ID           int64
	AccountID    int64
	Name         string
	Cuisine      string
	Instructions string
	Ingredients  []string
}
