package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,numeric"`
}

type VerifyOTPOutput struct {
	AccountID int64
	Email     string
	Token     string
}

// VerifyOTP checks the pending code for the account, marks the account
// verified, and signs the caller in. It backs both the post-signup
// verification route and the passwordless login route; the two differ
// only in how the code was requested.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.getAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found for otp verification", "email", in.Email)
		return nil, goerror.NewBusiness("User not found.", goerror.CodeNotFound)
	}
	if err != nil {
		return nil, err
	}

	if !acc.HasOTP() || *acc.OTP != in.OTP {
		slog.WarnContext(ctx, "otp does not match", "account_id", acc.ID)
		return nil, goerror.NewBusiness("The OTP you entered is incorrect.", goerror.CodeInvalidInput)
	}

	// The expiry instant itself counts as expired.
	if !s.clock.Now().Before(*acc.OTPExpiresAt) {
		slog.WarnContext(ctx, "otp has expired", "account_id", acc.ID)
		return nil, goerror.NewBusiness("Your OTP has expired. Please request a new one.", goerror.CodeInvalidInput)
	}

	if err := s.repoDB.VerifyAccount(ctx, acc.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo verify account", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishAccountVerified(ctx, AccountVerifiedEvent{
		EventID:   s.uuid.Generate(),
		AccountID: acc.ID,
		Email:     acc.Email,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish account verified", "account_id", acc.ID, "error", err)
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{
		AccountID: acc.ID,
		Email:     acc.Email,
		Token:     token,
	}, nil
}
