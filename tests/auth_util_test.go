package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// signup registers a fresh unverified account and returns its email.
// The OTP lands in a mailbox these tests cannot read, so flows below
// only exercise the pre-verification surface.
func signup(t *testing.T, password string) string {
	t.Helper()

	email := uniqueEmail("e2e")
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/signup", payload, "")
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("signup failed: status=%d message=%q", status, errEnv.Message)
	}

	return email
}
