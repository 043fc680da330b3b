package usecase

import (
	"context"
	"time"

	"github.com/anshy0304/veggiefinder/internal/pkg/idempotency"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
)

type fakeRepoMail struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeRepoMail) Send(_ context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeIdempotency runs fn exactly once per key and reports duplicates
// the same way the redis-backed tracker does.
type fakeIdempotency struct {
	completed map[string]bool
	keys      []string
}

func (f *fakeIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdempotency) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.keys = append(f.keys, key)
	if f.completed[key] {
		return idempotency.ErrAlreadyCompleted
	}
	if err := fn(ctx); err != nil {
		return err
	}
	if f.completed == nil {
		f.completed = map[string]bool{}
	}
	f.completed[key] = true
	return nil
}

type stubConfig struct{}

func (stubConfig) Close() error { return nil }

func (stubConfig) GetSecond(string) time.Duration { return 0 }

func (stubConfig) GetMinute(string) time.Duration { return 0 }

func (stubConfig) GetHour(string) time.Duration { return 24 * time.Hour }

func (stubConfig) GetDay(string) time.Duration { return 0 }

func (stubConfig) GetInt(string) int { return 0 }

func (stubConfig) GetInt32(string) int32 { return 0 }

func (stubConfig) GetInt64(string) int64 { return 0 }

func (stubConfig) GetUint(string) uint { return 0 }

func (stubConfig) GetUint16(string) uint16 { return 0 }

func (stubConfig) GetUint32(string) uint32 { return 0 }

func (stubConfig) GetUint64(string) uint64 { return 0 }

func (stubConfig) GetFloat32(string) float32 { return 0 }

func (stubConfig) GetFloat64(string) float64 { return 0 }

func (stubConfig) GetBool(string) bool { return false }

func (stubConfig) GetString(string) string { return "" }

func (stubConfig) GetBinary(string) []byte { return nil }

func (stubConfig) GetArray(string) []string { return nil }

func (stubConfig) GetMap(string) map[string]string { return nil }

type usecaseFixture struct {
	uc    *Usecase
	mail  *fakeRepoMail
	idemp *fakeIdempotency
}

func newFixture(tb interface{ Fatalf(string, ...any) }) *usecaseFixture {
	v, err := validator.NewV10Validator()
	if err != nil {
		tb.Fatalf("failed to build validator: %v", err)
	}

	repoMail := &fakeRepoMail{}
	idemp := &fakeIdempotency{completed: map[string]bool{}}

	uc := NewNotification(Dependency{
		RepoMail:    repoMail,
		Idempotency: idemp,
		Config:      stubConfig{},
		Validator:   v,
		Instrument:  instrument.NewNoop(),
	})

	return &usecaseFixture{uc: uc, mail: repoMail, idemp: idemp}
}
