package usecase

import (
	"context"
	"testing"
)

func TestConsumeAccountVerified_SendsWelcomeEmail(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeAccountVerified(context.Background(), ConsumeAccountVerifiedInput{
		EventID:   "evt-9",
		AccountID: 100,
		Email:     "alice@example.com",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeAccountVerified() error = %v, want nil", err)
	}
	if len(fx.mail.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(fx.mail.sent))
	}
	if fx.mail.sent[0].Subject != "Welcome to VeggieFinder!" {
		t.Errorf("subject = %q", fx.mail.sent[0].Subject)
	}
}

func TestConsumeAccountVerified_DuplicateEventSkipped(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	in := ConsumeAccountVerifiedInput{EventID: "evt-9", AccountID: 100, Email: "alice@example.com"}

	// Act
	err1 := fx.uc.ConsumeAccountVerified(context.Background(), in)
	err2 := fx.uc.ConsumeAccountVerified(context.Background(), in)

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("errors = %v, %v, want nil for both", err1, err2)
	}
	if len(fx.mail.sent) != 1 {
		t.Errorf("sent %d emails, want exactly 1 for the same event id", len(fx.mail.sent))
	}
}

func TestConsumeAccountVerified_InvalidPayloadDropped(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeAccountVerified(context.Background(), ConsumeAccountVerifiedInput{
		EventID: "evt-9",
		Email:   "alice@example.com",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeAccountVerified() error = %v, want nil for a malformed event", err)
	}
	if len(fx.mail.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(fx.mail.sent))
	}
}
