package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anshy0304/veggiefinder/internal/identity/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/clock"
	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/hash"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/otp"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type OTPIssuedEvent struct {
	EventID          string
	AccountID        int64
	Email            string
	OTP              string
	Purpose          string
	ExpiresInMinutes int
}

type AccountVerifiedEvent struct {
	EventID   string
	AccountID int64
	Email     string
}

type repoMessaging interface {
	PublishOTPIssued(ctx context.Context, msg OTPIssuedEvent) error
	PublishAccountVerified(ctx context.Context, msg AccountVerifiedEvent) error
}

type repoDB interface {
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	CreateAccount(ctx context.Context, in entity.NewAccount) error
	SetAccountOTP(ctx context.Context, in entity.OTPIssuance) error
	VerifyAccount(ctx context.Context, accountID int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	hasher        hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	otp           otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Hasher        hash.Hash
	UID           uid.NumberID
	UUID          uid.StringID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hasher:        dep.Hasher,
		uid:           dep.UID,
		uuid:          dep.UUID,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

// issueOTP stores a fresh code on the account and announces it for email
// delivery. A concurrent issuance overwrites the previous code, last
// write wins. Publish failures never fail the caller; a resend recovers
// a lost email.
func (s *Usecase) issueOTP(ctx context.Context, acc *entity.Account, purpose string) error {
	ttlMinutes := s.cfg.GetInt("modules.identity.otp_ttl_minutes")
	code := s.otp.Generate()

	issuance := entity.OTPIssuance{
		AccountID: acc.ID,
		OTP:       code,
		ExpiresAt: s.clock.Now().Add(s.cfg.GetMinute("modules.identity.otp_ttl_minutes")),
	}
	if err := s.repoDB.SetAccountOTP(ctx, issuance); err != nil {
		slog.ErrorContext(ctx, "failed to repo set account otp", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		EventID:          s.uuid.Generate(),
		AccountID:        acc.ID,
		Email:            acc.Email,
		OTP:              code,
		Purpose:          purpose,
		ExpiresInMinutes: ttlMinutes,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp issued", "account_id", acc.ID, "error", err)
	}

	return nil
}

func (s *Usecase) getAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	acc, err := s.repoDB.GetAccountByEmail(ctx, email)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return acc, err
}
