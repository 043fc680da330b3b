package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

func TestSignup_Success(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	out, err := f.uc.Signup(context.Background(), SignupInput{
		Email:    "cook@example.com",
		Password: "secret123",
	})

	// Assert
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if out.Email != "cook@example.com" {
		t.Errorf("Signup() email = %q, want %q", out.Email, "cook@example.com")
	}

	if len(f.repo.createdAccounts) != 1 {
		t.Fatalf("created accounts = %d, want 1", len(f.repo.createdAccounts))
	}
	created := f.repo.createdAccounts[0]
	if created.Email != "cook@example.com" {
		t.Errorf("created email = %q, want %q", created.Email, "cook@example.com")
	}
	if created.PasswordHash != "hashed:secret123" {
		t.Errorf("created password hash = %q, want fake bcrypt output", created.PasswordHash)
	}

	if len(f.repo.otpIssuances) != 1 {
		t.Fatalf("otp issuances = %d, want 1", len(f.repo.otpIssuances))
	}
	iss := f.repo.otpIssuances[0]
	if iss.OTP != "123456" {
		t.Errorf("issued otp = %q, want %q", iss.OTP, "123456")
	}
	if want := testNow.Add(10 * time.Minute); !iss.ExpiresAt.Equal(want) {
		t.Errorf("otp expires at = %v, want %v", iss.ExpiresAt, want)
	}

	if len(f.msg.otpEvents) != 1 {
		t.Fatalf("otp events = %d, want 1", len(f.msg.otpEvents))
	}
	if got := f.msg.otpEvents[0].Purpose; got != event.OTPPurposeSignup {
		t.Errorf("event purpose = %q, want %q", got, event.OTPPurposeSignup)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.repo.accounts["cook@example.com"] = verifiedAccount(1, "cook@example.com", "secret123")

	// Act
	_, err := f.uc.Signup(context.Background(), SignupInput{
		Email:    "cook@example.com",
		Password: "secret123",
	})

	// Assert
	gerr := asGoError(t, err)
	if gerr.Code() != goerror.CodeConflict {
		t.Errorf("error code = %v, want conflict", gerr.Code())
	}
	if gerr.Msg() != "You already signed up. Please proceed to login." {
		t.Errorf("error message = %q", gerr.Msg())
	}
	if len(f.repo.createdAccounts) != 0 {
		t.Errorf("created accounts = %d, want 0", len(f.repo.createdAccounts))
	}
}

func TestSignup_EmailCaseSensitive(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.repo.accounts["cook@example.com"] = verifiedAccount(1, "cook@example.com", "secret123")

	// Act
	out, err := f.uc.Signup(context.Background(), SignupInput{
		Email:    "Cook@Example.com",
		Password: "secret123",
	})

	// Assert: emails match exactly as stored, so this is a new account.
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if out.Email != "Cook@Example.com" {
		t.Errorf("Signup() email = %q, want %q", out.Email, "Cook@Example.com")
	}
	if len(f.repo.createdAccounts) != 1 {
		t.Fatalf("created accounts = %d, want 1", len(f.repo.createdAccounts))
	}
	if got := f.repo.createdAccounts[0].Email; got != "Cook@Example.com" {
		t.Errorf("created email = %q, want exact casing preserved", got)
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := f.uc.Signup(context.Background(), SignupInput{
		Email:    "cook@example.com",
		Password: "short",
	})

	// Assert
	gerr := asGoError(t, err)
	if gerr.Type() != goerror.TypeValidation {
		t.Errorf("error type = %v, want validation", gerr.Type())
	}
}

func TestSignup_PublishFailureDoesNotFailSignup(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.msg.publishErr = context.DeadlineExceeded

	// Act
	out, err := f.uc.Signup(context.Background(), SignupInput{
		Email:    "cook@example.com",
		Password: "secret123",
	})

	// Assert
	if err != nil {
		t.Fatalf("Signup() error = %v, want nil despite publish failure", err)
	}
	if out == nil || out.Email != "cook@example.com" {
		t.Errorf("Signup() output = %+v", out)
	}
	if len(f.repo.otpIssuances) != 1 {
		t.Errorf("otp issuances = %d, want 1", len(f.repo.otpIssuances))
	}
}
