package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

const (
	subjectVerificationCode = "Your VeggieFinder Verification Code"
	subjectLoginCode        = "Your VeggieFinder Login Code"
)

type ConsumeOTPIssuedInput struct {
	EventID          string `validate:"required"`
	AccountID        int64  `validate:"required,gt=0"`
	Email            string `validate:"required,email"`
	OTP              string `validate:"required,len=6,numeric"`
	Purpose          string `validate:"required,oneof=signup login"`
	ExpiresInMinutes int    `validate:"required,gt=0"`
}

func (s *Usecase) ConsumeOTPIssued(ctx context.Context, in ConsumeOTPIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPIssued")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	subject := subjectVerificationCode
	if in.Purpose == event.OTPPurposeLogin {
		subject = subjectLoginCode
	}

	body := fmt.Sprintf(
		"Your one-time password (OTP) is: %s\nThis code will expire in %d minutes.",
		in.OTP, in.ExpiresInMinutes,
	)

	if err := s.sendEmailOnce(ctx, in.EventID, mail.Message{
		To:       []string{in.Email},
		Subject:  subject,
		TextBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "account_id", in.AccountID, "error", err)
		return err
	}

	return nil
}
