package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/anshy0304/veggiefinder/internal/identity/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type fakeRepoDB struct {
	accounts map[string]*entity.Account

	createdAccounts []entity.NewAccount
	otpIssuances    []entity.OTPIssuance
	verifiedIDs     []int64

	getErr    error
	createErr error
	setOTPErr error
	verifyErr error
}

func (f *fakeRepoDB) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	acc, ok := f.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

func (f *fakeRepoDB) CreateAccount(_ context.Context, in entity.NewAccount) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdAccounts = append(f.createdAccounts, in)
	return nil
}

func (f *fakeRepoDB) SetAccountOTP(_ context.Context, in entity.OTPIssuance) error {
	if f.setOTPErr != nil {
		return f.setOTPErr
	}
	f.otpIssuances = append(f.otpIssuances, in)
	// Apply to the stored account so a later lookup sees the new code.
	for _, acc := range f.accounts {
		if acc.ID == in.AccountID {
			acc.OTP = ptr(in.OTP)
			acc.OTPExpiresAt = ptr(in.ExpiresAt)
		}
	}
	return nil
}

func (f *fakeRepoDB) VerifyAccount(_ context.Context, accountID int64) error {
	if f.verifyErr != nil {
		return f.verifyErr
	}
	f.verifiedIDs = append(f.verifiedIDs, accountID)
	return nil
}

type fakeMessaging struct {
	otpEvents      []OTPIssuedEvent
	verifiedEvents []AccountVerifiedEvent

	publishErr error
}

func (f *fakeMessaging) PublishOTPIssued(_ context.Context, msg OTPIssuedEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.otpEvents = append(f.otpEvents, msg)
	return nil
}

func (f *fakeMessaging) PublishAccountVerified(_ context.Context, msg AccountVerifiedEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.verifiedEvents = append(f.verifiedEvents, msg)
	return nil
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return testNow }

type fakeHash struct{}

func (fakeHash) Hash(plaintext string) ([]byte, error) { return []byte("hashed:" + plaintext), nil }

func (fakeHash) Verify(hashed, plaintext string) bool { return hashed == "hashed:"+plaintext }

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type fixedStringID struct{ v string }

func (f fixedStringID) Generate() string { return f.v }

type fixedOTP struct{ code string }

func (f *fixedOTP) Generate() string { return f.code }

type stubJWT struct {
	token string
	err   error
}

func (s stubJWT) Generate(int64, string) (string, error) { return s.token, s.err }

func (s stubJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, errors.New("not used") }

type stubConfig struct {
	strings map[string]string
	ints    map[string]int
	minutes map[string]time.Duration
}

func (stubConfig) Close() error { return nil }

func (c stubConfig) GetSecond(string) time.Duration { return 0 }

func (c stubConfig) GetMinute(key string) time.Duration { return c.minutes[key] }

func (c stubConfig) GetHour(string) time.Duration { return 0 }

func (c stubConfig) GetDay(string) time.Duration { return 0 }

func (c stubConfig) GetInt(key string) int { return c.ints[key] }

func (c stubConfig) GetInt32(string) int32 { return 0 }

func (c stubConfig) GetInt64(string) int64 { return 0 }

func (c stubConfig) GetUint(string) uint { return 0 }

func (c stubConfig) GetUint16(string) uint16 { return 0 }

func (c stubConfig) GetUint32(string) uint32 { return 0 }

func (c stubConfig) GetUint64(string) uint64 { return 0 }

func (c stubConfig) GetFloat32(string) float32 { return 0 }

func (c stubConfig) GetFloat64(string) float64 { return 0 }

func (c stubConfig) GetBool(string) bool { return false }

func (c stubConfig) GetString(key string) string { return c.strings[key] }

func (c stubConfig) GetBinary(string) []byte { return nil }

func (c stubConfig) GetArray(string) []string { return nil }

func (c stubConfig) GetMap(string) map[string]string { return nil }

type usecaseFixture struct {
	uc   *Usecase
	repo *fakeRepoDB
	msg  *fakeMessaging
	otp  *fixedOTP
}

func newFixture(tb interface{ Fatalf(string, ...any) }) *usecaseFixture {
	v, err := validator.NewV10Validator()
	if err != nil {
		tb.Fatalf("failed to build validator: %v", err)
	}

	repo := &fakeRepoDB{accounts: map[string]*entity.Account{}}
	msg := &fakeMessaging{}
	otpGen := &fixedOTP{code: "123456"}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Validator:     v,
		Config: stubConfig{
			ints:    map[string]int{"modules.identity.otp_ttl_minutes": 10},
			minutes: map[string]time.Duration{"modules.identity.otp_ttl_minutes": 10 * time.Minute},
		},
		Hasher:     fakeHash{},
		UID:        &seqNumberID{next: 100},
		UUID:       fixedStringID{v: "event-id"},
		OTP:        otpGen,
		Clock:      fixedClock{},
		JWT:        stubJWT{token: "signed-token"},
		Instrument: instrument.NewNoop(),
	})

	return &usecaseFixture{uc: uc, repo: repo, msg: msg, otp: otpGen}
}

func ptr[T any](v T) *T { return &v }

func verifiedAccount(id int64, email, password string) *entity.Account {
	return &entity.Account{
		ID:           id,
		Email:        email,
		PasswordHash: "hashed:" + password,
		IsVerified:   true,
	}
}

func unverifiedAccountWithOTP(id int64, email, code string, expiresAt time.Time) *entity.Account {
	return &entity.Account{
		ID:           id,
		Email:        email,
		PasswordHash: "hashed:secret123",
		OTP:          ptr(code),
		OTPExpiresAt: ptr(expiresAt),
	}
}

func asGoError(tb interface{ Fatalf(string, ...any) }, err error) *goerror.Error {
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		tb.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	return gerr
}
