package usecase

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/favorite/entity"
	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
)

type fakeRepoDB struct {
	favorites []entity.Favorite

	created   []entity.NewFavorite
	deleted   [][2]int64
	listErr   error
	createErr error
	deleteErr error
}

func (f *fakeRepoDB) ListFavoritesByAccount(_ context.Context, accountID int64) ([]entity.Favorite, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []entity.Favorite
	for _, fav := range f.favorites {
		if fav.AccountID == accountID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeRepoDB) CreateFavorite(_ context.Context, in entity.NewFavorite) error {
	if f.createErr != nil {
		return f.createErr
	}

	for _, existing := range f.created {
		if existing.AccountID == in.AccountID && existing.MealID == in.MealID {
			return goerror.ErrConflict
		}
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeRepoDB) DeleteFavorite(_ context.Context, favoriteID, accountID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, [2]int64{favoriteID, accountID})
	return nil
}

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type usecaseFixture struct {
	uc   *Usecase
	repo *fakeRepoDB
}

func newFixture(tb interface{ Fatalf(string, ...any) }) *usecaseFixture {
	v, err := validator.NewV10Validator()
	if err != nil {
		tb.Fatalf("failed to build validator: %v", err)
	}

	repo := &fakeRepoDB{}

	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		UID:        &seqNumberID{next: 900},
		Instrument: instrument.NewNoop(),
	})

	return &usecaseFixture{uc: uc, repo: repo}
}

func authedCtx(accountID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: accountID, UserEmail: "alice@example.com"})
}
