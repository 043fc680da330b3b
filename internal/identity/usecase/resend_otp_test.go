package usecase

import (
	"context"
	"testing"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

func TestResendOTP_Success(t *testing.T) {
	// Arrange
	f := newFixture(t)
	acc := verifiedAccount(7, "cook@example.com", "secret123")
	acc.IsVerified = false
	f.repo.accounts["cook@example.com"] = acc

	// Act
	err := f.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "cook@example.com"})

	// Assert
	if err != nil {
		t.Fatalf("ResendOTP() error = %v", err)
	}
	if len(f.msg.otpEvents) != 1 || f.msg.otpEvents[0].Purpose != event.OTPPurposeSignup {
		t.Errorf("otp events = %+v, want one signup-purpose event", f.msg.otpEvents)
	}
}

func TestResendOTP_AlreadyVerified(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.repo.accounts["cook@example.com"] = verifiedAccount(7, "cook@example.com", "secret123")

	// Act
	err := f.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "cook@example.com"})

	// Assert
	gerr := asGoError(t, err)
	if gerr.Msg() != "Account is already verified." {
		t.Errorf("error message = %q", gerr.Msg())
	}
	if len(f.repo.otpIssuances) != 0 {
		t.Errorf("otp issuances = %d, want 0", len(f.repo.otpIssuances))
	}
}

func TestResendOTP_AccountNotFound(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := f.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "ghost@example.com"})

	// Assert
	gerr := asGoError(t, err)
	if gerr.Code() != goerror.CodeNotFound {
		t.Errorf("error code = %v, want not found", gerr.Code())
	}
}
