package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

type ResendOTPInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) ResendOTP(ctx context.Context, in ResendOTPInput) error {
	ctx, span := s.startSpan(ctx, "ResendOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.getAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found for otp resend", "email", in.Email)
		return goerror.NewBusiness("User not found.", goerror.CodeNotFound)
	}
	if err != nil {
		return err
	}

	if acc.IsVerified {
		slog.WarnContext(ctx, "otp resend for a verified account", "account_id", acc.ID)
		return goerror.NewBusiness("Account is already verified.", goerror.CodeInvalidInput)
	}

	return s.issueOTP(ctx, acc, event.OTPPurposeSignup)
}
