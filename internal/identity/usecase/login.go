package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	AccountID int64
	Email     string
	Token     string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.getAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		// Same message as a wrong password so responses do not reveal
		// which of the two failed.
		slog.WarnContext(ctx, "account not found for login", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	// Verification state is reported before the password is checked, so
	// an unverified account always gets the verify-first response.
	if !acc.IsVerified {
		slog.WarnContext(ctx, "account is not verified", "account_id", acc.ID)
		return nil, goerror.NewBusiness("Please verify your account first", goerror.CodeForbidden,
			"not_verified", "true")
	}

	if !s.hasher.Verify(acc.PasswordHash, in.Password) {
		slog.WarnContext(ctx, "account password does not match", "account_id", acc.ID)
		return nil, goerror.NewBusiness("Invalid email or password", goerror.CodeUnauthorized)
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccountID: acc.ID,
		Email:     acc.Email,
		Token:     token,
	}, nil
}
