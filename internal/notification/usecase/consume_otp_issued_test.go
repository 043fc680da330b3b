package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func validOTPIssuedInput() ConsumeOTPIssuedInput {
	return ConsumeOTPIssuedInput{
		EventID:          "evt-1",
		AccountID:        100,
		Email:            "alice@example.com",
		OTP:              "123456",
		Purpose:          "signup",
		ExpiresInMinutes: 10,
	}
}

func TestConsumeOTPIssued_SignupPurpose(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeOTPIssued(context.Background(), validOTPIssuedInput())

	// Assert
	if err != nil {
		t.Fatalf("ConsumeOTPIssued() error = %v, want nil", err)
	}
	if len(fx.mail.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(fx.mail.sent))
	}
	msg := fx.mail.sent[0]
	if msg.Subject != "Your VeggieFinder Verification Code" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "alice@example.com" {
		t.Errorf("to = %v, want [alice@example.com]", msg.To)
	}
	if !strings.Contains(msg.TextBody, "123456") {
		t.Errorf("body %q does not contain the code", msg.TextBody)
	}
	if !strings.Contains(msg.TextBody, "10 minutes") {
		t.Errorf("body %q does not state the expiry", msg.TextBody)
	}
}

func TestConsumeOTPIssued_LoginPurpose(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	in := validOTPIssuedInput()
	in.Purpose = "login"

	// Act
	err := fx.uc.ConsumeOTPIssued(context.Background(), in)

	// Assert
	if err != nil {
		t.Fatalf("ConsumeOTPIssued() error = %v, want nil", err)
	}
	if len(fx.mail.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(fx.mail.sent))
	}
	if fx.mail.sent[0].Subject != "Your VeggieFinder Login Code" {
		t.Errorf("subject = %q", fx.mail.sent[0].Subject)
	}
}

func TestConsumeOTPIssued_DuplicateEventSkipped(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	in := validOTPIssuedInput()

	// Act
	err1 := fx.uc.ConsumeOTPIssued(context.Background(), in)
	err2 := fx.uc.ConsumeOTPIssued(context.Background(), in)

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("errors = %v, %v, want nil for both", err1, err2)
	}
	if len(fx.mail.sent) != 1 {
		t.Errorf("sent %d emails, want exactly 1 for the same event id", len(fx.mail.sent))
	}
}

func TestConsumeOTPIssued_InvalidPayloadDropped(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	in := validOTPIssuedInput()
	in.Email = "not-an-email"

	// Act
	err := fx.uc.ConsumeOTPIssued(context.Background(), in)

	// Assert
	if err != nil {
		t.Fatalf("ConsumeOTPIssued() error = %v, want nil for a malformed event", err)
	}
	if len(fx.mail.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(fx.mail.sent))
	}
}

func TestConsumeOTPIssued_SendFailureReturnedForRetry(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.mail.sendErr = errors.New("smtp down")

	// Act
	err := fx.uc.ConsumeOTPIssued(context.Background(), validOTPIssuedInput())

	// Assert
	if err == nil {
		t.Fatal("ConsumeOTPIssued() error = nil, want delivery error")
	}
}
