package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

type SendLoginOTPInput struct {
	Email string `validate:"required,email"`
}

func (s *Usecase) SendLoginOTP(ctx context.Context, in SendLoginOTPInput) error {
	ctx, span := s.startSpan(ctx, "SendLoginOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.getAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found for login otp", "email", in.Email)
		return goerror.NewBusiness("No account found with that email address.", goerror.CodeNotFound)
	}
	if err != nil {
		return err
	}

	return s.issueOTP(ctx, acc, event.OTPPurposeLogin)
}
