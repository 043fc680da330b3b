package usecase

import (
	"testing"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

func TestRemove_Success(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.Remove(authedCtx(1), RemoveInput{ID: 901})

	// Assert
	if err != nil {
		t.Fatalf("Remove() error = %v, want nil", err)
	}
	if len(fx.repo.deleted) != 1 || fx.repo.deleted[0] != [2]int64{901, 1} {
		t.Errorf("deleted = %v, want [[901 1]]", fx.repo.deleted)
	}
}

func TestRemove_ForeignFavoriteLooksMissing(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.deleteErr = goerror.ErrNotFound

	// Act
	err := fx.uc.Remove(authedCtx(1), RemoveInput{ID: 901})

	// Assert
	if err == nil {
		t.Fatal("Remove() error = nil, want not found")
	}
	gerr := asGoError(t, err)
	if gerr.Code() != goerror.CodeNotFound {
		t.Errorf("code = %v, want CodeNotFound", gerr.Code())
	}
	if gerr.Msg() != "Favorite not found." {
		t.Errorf("message = %q", gerr.Msg())
	}
}

func TestList_ReturnsOnlyCallerFavorites(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.favorites = []entity.Favorite{
		{ID: 1, AccountID: 1, MealID: "52807", MealName: "Baingan Bharta"},
		{ID: 2, AccountID: 2, MealID: "52785", MealName: "Dal Fry"},
	}

	// Act
	resp, err := fx.uc.List(authedCtx(1))

	// Assert
	if err != nil {
		t.Fatalf("List() error = %v, want nil", err)
	}
	if len(resp.Favorites) != 1 || resp.Favorites[0].MealName != "Baingan Bharta" {
		t.Errorf("favorites = %v, want only the caller's", resp.Favorites)
	}
}
