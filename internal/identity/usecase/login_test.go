package usecase

import (
	"context"
	"testing"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

func TestLogin_Success(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.repo.accounts["cook@example.com"] = verifiedAccount(7, "cook@example.com", "secret123")

	// Act
	out, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "cook@example.com",
		Password: "secret123",
	})

	// Assert
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if out.AccountID != 7 || out.Email != "cook@example.com" || out.Token != "signed-token" {
		t.Errorf("Login() output = %+v", out)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordShareMessage(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.repo.accounts["cook@example.com"] = verifiedAccount(7, "cook@example.com", "secret123")

	// Act
	_, errUnknown := f.uc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "secret123",
	})
	_, errWrongPass := f.uc.Login(context.Background(), LoginInput{
		Email:    "cook@example.com",
		Password: "wrong-password",
	})

	// Assert
	gUnknown := asGoError(t, errUnknown)
	gWrongPass := asGoError(t, errWrongPass)

	if gUnknown.Code() != goerror.CodeUnauthorized || gWrongPass.Code() != goerror.CodeUnauthorized {
		t.Errorf("codes = %v, %v, want unauthorized for both", gUnknown.Code(), gWrongPass.Code())
	}
	if gUnknown.Msg() != gWrongPass.Msg() {
		t.Errorf("messages differ: %q vs %q", gUnknown.Msg(), gWrongPass.Msg())
	}
	if gUnknown.Msg() != "Invalid email or password" {
		t.Errorf("message = %q", gUnknown.Msg())
	}
}

func TestLogin_UnverifiedAccount(t *testing.T) {
	// Arrange
	f := newFixture(t)
	acc := verifiedAccount(7, "cook@example.com", "secret123")
	acc.IsVerified = false
	f.repo.accounts["cook@example.com"] = acc

	// Act
	out, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "cook@example.com",
		Password: "secret123",
	})

	// Assert
	if out != nil {
		t.Errorf("Login() output = %+v, want nil (no token before verification)", out)
	}
	gerr := asGoError(t, err)
	if gerr.Code() != goerror.CodeForbidden {
		t.Errorf("error code = %v, want forbidden", gerr.Code())
	}
	if gerr.Msg() != "Please verify your account first" {
		t.Errorf("error message = %q", gerr.Msg())
	}
	if gerr.Fields()["not_verified"] != "true" {
		t.Errorf("fields = %v, want not_verified flag", gerr.Fields())
	}
}

func TestLogin_UnverifiedAccountWrongPassword(t *testing.T) {
	// Arrange
	f := newFixture(t)
	acc := verifiedAccount(7, "cook@example.com", "secret123")
	acc.IsVerified = false
	f.repo.accounts["cook@example.com"] = acc

	// Act
	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "cook@example.com",
		Password: "wrong-password",
	})

	// Assert: verification state wins over the password check.
	gerr := asGoError(t, err)
	if gerr.Code() != goerror.CodeForbidden {
		t.Errorf("error code = %v, want forbidden", gerr.Code())
	}
	if gerr.Msg() != "Please verify your account first" {
		t.Errorf("error message = %q", gerr.Msg())
	}
	if gerr.Fields()["not_verified"] != "true" {
		t.Errorf("fields = %v, want not_verified flag", gerr.Fields())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.Login(context.Background(), LoginInput{Email: "cook@example.com"})

	// Assert
	gerr := asGoError(t, err)
	if gerr.Type() != goerror.TypeValidation {
		t.Errorf("error type = %v, want validation", gerr.Type())
	}
}
