package usecase

import (
	"context"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
)

type ConsumeAccountVerifiedInput struct {
	EventID   string `validate:"required"`
	AccountID int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
}

func (s *Usecase) ConsumeAccountVerified(ctx context.Context, in ConsumeAccountVerifiedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeAccountVerified")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	body := "Welcome to VeggieFinder!\n\n" +
		"Your account has been verified. You can now browse vegetarian recipes, " +
		"save favorites, and share your own creations."

	if err := s.sendEmailOnce(ctx, in.EventID, mail.Message{
		To:       []string{in.Email},
		Subject:  "Welcome to VeggieFinder!",
		TextBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "account_id", in.AccountID, "error", err)
		return err
	}

	return nil
}
