package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/identity/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/shared/event"
)

type SignupInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

type SignupOutput struct {
	Email string
}

func (s *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.getAccountByEmail(ctx, in.Email)
	if err == nil {
		slog.WarnContext(ctx, "signup for an existing account", "email", in.Email)
		return nil, goerror.NewBusiness("You already signed up. Please proceed to login.", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	acc := &entity.Account{
		ID:    s.uid.Generate(),
		Email: in.Email,
	}
	if err := s.repoDB.CreateAccount(ctx, entity.NewAccount{
		ID:           acc.ID,
		Email:        acc.Email,
		PasswordHash: string(hashedPassword),
	}); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("You already signed up. Please proceed to login.", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create account", "email", acc.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.issueOTP(ctx, acc, event.OTPPurposeSignup); err != nil {
		return nil, err
	}

	return &SignupOutput{Email: acc.Email}, nil
}
