package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

func TestSearchMeals_MergesLocalAndRemote(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.recipes = []entity.Recipe{
		{ID: 42, AccountID: 1, Name: "Home Curry", Cuisine: "Vegetarian"},
	}
	fx.meals.meals = []entity.Meal{
		{ID: "52807", Name: "Baingan Bharta", Category: "Vegetarian"},
	}

	// Act
	resp, err := fx.uc.SearchMeals(context.Background(), SearchMealsInput{Query: "curry"})

	// Assert
	if err != nil {
		t.Fatalf("SearchMeals() error = %v, want nil", err)
	}
	if len(resp.Meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(resp.Meals))
	}
	if resp.Meals[0].ID != "42" {
		t.Errorf("first meal id = %q, want the local recipe first", resp.Meals[0].ID)
	}
	if resp.Meals[1].ID != "52807" {
		t.Errorf("second meal id = %q, want 52807", resp.Meals[1].ID)
	}
}

func TestSearchMeals_LocalWinsOnIDCollision(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.recipes = []entity.Recipe{
		{ID: 52807, AccountID: 1, Name: "My Baingan Bharta", Cuisine: "Vegetarian"},
	}
	fx.meals.meals = []entity.Meal{
		{ID: "52807", Name: "Baingan Bharta", Category: "Vegetarian"},
		{ID: "52785", Name: "Dal Fry", Category: "Vegetarian"},
	}

	// Act
	resp, err := fx.uc.SearchMeals(context.Background(), SearchMealsInput{Query: "bharta"})

	// Assert
	if err != nil {
		t.Fatalf("SearchMeals() error = %v, want nil", err)
	}
	if len(resp.Meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(resp.Meals))
	}
	if resp.Meals[0].Name != "My Baingan Bharta" {
		t.Errorf("colliding meal = %q, want the local one", resp.Meals[0].Name)
	}
}

func TestSearchMeals_RequiresQuery(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.SearchMeals(context.Background(), SearchMealsInput{})

	// Assert
	if err == nil {
		t.Fatal("SearchMeals() error = nil, want validation error")
	}
	if asGoError(t, err).Code() != goerror.CodeInvalidInput {
		t.Errorf("code = %v, want CodeInvalidInput", asGoError(t, err).Code())
	}
}

func TestSearchMeals_UpstreamFailure(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.meals.err = errors.New("upstream unavailable")

	// Act
	_, err := fx.uc.SearchMeals(context.Background(), SearchMealsInput{Query: "curry"})

	// Assert
	if err == nil {
		t.Fatal("SearchMeals() error = nil, want server error")
	}
	if asGoError(t, err).Type() != goerror.TypeServer {
		t.Errorf("type = %v, want TypeServer", asGoError(t, err).Type())
	}
}

func TestMealsByCategory_MergesLocalAndRemote(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.recipes = []entity.Recipe{
		{ID: 7, AccountID: 2, Name: "Tempeh Bowl", Cuisine: "Vegetarian"},
	}
	fx.meals.meals = []entity.Meal{
		{ID: "52785", Name: "Dal Fry", Category: "Vegetarian"},
	}

	// Act
	resp, err := fx.uc.MealsByCategory(context.Background(), MealsByCategoryInput{Category: "Vegetarian"})

	// Assert
	if err != nil {
		t.Fatalf("MealsByCategory() error = %v, want nil", err)
	}
	if len(resp.Meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(resp.Meals))
	}
}

func TestMealsByCategory_RequiresCategory(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.MealsByCategory(context.Background(), MealsByCategoryInput{})

	// Assert
	if err == nil {
		t.Fatal("MealsByCategory() error = nil, want validation error")
	}
}
