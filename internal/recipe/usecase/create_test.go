package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

func TestCreate_DefaultsCuisineToVegetarian(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	resp, err := fx.uc.Create(authedCtx(1), CreateInput{
		Name:         "Lentil Curry",
		Instructions: "Simmer lentils with spices.",
		Ingredients:  []string{"lentils", "curry powder"},
	})

	// Assert
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
	if resp.ID == 0 {
		t.Error("Create() returned zero id")
	}
	if len(fx.repo.created) != 1 {
		t.Fatalf("created %d recipes, want 1", len(fx.repo.created))
	}
	rec := fx.repo.created[0]
	if rec.Cuisine != "Vegetarian" {
		t.Errorf("cuisine = %q, want Vegetarian", rec.Cuisine)
	}
	if rec.AccountID != 1 {
		t.Errorf("account id = %d, want 1", rec.AccountID)
	}
}

func TestCreate_KeepsExplicitCuisine(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.Create(authedCtx(1), CreateInput{
		Name:         "Gado-Gado",
		Cuisine:      "Indonesian",
		Instructions: "Blanch vegetables, serve with peanut sauce.",
		Ingredients:  []string{"vegetables", "peanut sauce"},
	})

	// Assert
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
	if fx.repo.created[0].Cuisine != "Indonesian" {
		t.Errorf("cuisine = %q, want Indonesian", fx.repo.created[0].Cuisine)
	}
}

func TestCreate_RequiresIngredients(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.Create(authedCtx(1), CreateInput{
		Name:         "Empty",
		Instructions: "None.",
	})

	// Assert
	if err == nil {
		t.Fatal("Create() error = nil, want validation error")
	}
	gerr := asGoError(t, err)
	if gerr.Code() != goerror.CodeInvalidInput {
		t.Errorf("code = %v, want CodeInvalidInput", gerr.Code())
	}
	if len(fx.repo.created) != 0 {
		t.Errorf("created %d recipes, want 0", len(fx.repo.created))
	}
}

func TestCreate_RequiresAuthentication(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.Create(context.Background(), CreateInput{
		Name:         "Lentil Curry",
		Instructions: "Simmer.",
		Ingredients:  []string{"lentils"},
	})

	// Assert
	if err == nil {
		t.Fatal("Create() error = nil, want unauthorized")
	}
	if asGoError(t, err).Code() != goerror.CodeUnauthorized {
		t.Errorf("code = %v, want CodeUnauthorized", asGoError(t, err).Code())
	}
}

func TestCreate_RepositoryFailure(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.createErr = errors.New("db down")

	// Act
	_, err := fx.uc.Create(authedCtx(1), CreateInput{
		Name:         "Lentil Curry",
		Instructions: "Simmer.",
		Ingredients:  []string{"lentils"},
	})

	// Assert
	if err == nil {
		t.Fatal("Create() error = nil, want server error")
	}
}

func asGoError(tb interface{ Fatalf(string, ...any) }, err error) *goerror.Error {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		tb.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	return gerr
}
