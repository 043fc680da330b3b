package tests

import (
	"net/http"
	"testing"
)

func TestSignup(t *testing.T) {

	t.Run("Success", func(t *testing.T) {

		// Arrange
		email := uniqueEmail("e2e-signup")
		payload := map[string]string{
			"email":    email,
			"password": "Secret123!",
		}

		// Act
		status, body := doJSON(t, http.MethodPost, "/api/v1/auth/signup", payload, "")

		// Assert
		if status != http.StatusCreated {
			t.Fatalf("status = %d, want 201", status)
		}

		var data struct {
			Email string `json:"email"`
		}
		decodeSuccess(t, body, &data)
		if data.Email != email {
			t.Fatalf("email = %q, want %q", data.Email, email)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {

		// Arrange
		email := signup(t, "Secret123!")
		payload := map[string]string{
			"email":    email,
			"password": "Secret123!",
		}

		// Act
		status, body := doJSON(t, http.MethodPost, "/api/v1/auth/signup", payload, "")

		// Assert
		if status != http.StatusConflict {
			t.Fatalf("status = %d, want 409", status)
		}
		errEnv := decodeError(t, body)
		if errEnv.Message != "You already signed up. Please proceed to login." {
			t.Fatalf("message = %q", errEnv.Message)
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {

		// Arrange
		payload := map[string]string{
			"email":    uniqueEmail("e2e-short"),
			"password": "abc",
		}

		// Act
		status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/signup", payload, "")

		// Assert
		if status != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", status)
		}
	})
}
