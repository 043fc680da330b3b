package tests

import (
	"net/http"
	"testing"
)

func TestMealsSearchIsPublic(t *testing.T) {

	t.Run("MissingQuery", func(t *testing.T) {

		// Act
		status, _ := doJSON(t, http.MethodGet, "/api/v1/meals/search", nil, "")

		// Assert
		if status == http.StatusUnauthorized {
			t.Fatalf("search must not require a token, got 401")
		}
		if status != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", status)
		}
	})

	t.Run("WithQuery", func(t *testing.T) {

		// Act
		status, _ := doJSON(t, http.MethodGet, "/api/v1/meals/search?q=bean", nil, "")

		// Assert
		// The upstream meal API may be unreachable from CI, in which
		// case the service answers 500. Both outcomes prove the route
		// is public.
		if status != http.StatusOK && status != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 200 or 500", status)
		}
	})
}

func TestMealsByCategoryIsPublic(t *testing.T) {

	// Act
	status, _ := doJSON(t, http.MethodGet, "/api/v1/meals/category/Vegetarian", nil, "")

	// Assert
	if status == http.StatusUnauthorized {
		t.Fatalf("category browse must not require a token, got 401")
	}
	if status != http.StatusOK && status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 200 or 500", status)
	}
}
