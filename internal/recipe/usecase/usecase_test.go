package usecase

import (
	"context"
	"io"
	"time"

	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/storage"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"github.com/anshy0304/veggiefinder/internal/recipe/entity"
)

type fakeRepoDB struct {
	recipes []entity.Recipe

	created   []entity.NewRecipe
	updated   []entity.NewRecipe
	deleted   [][2]int64
	imagesSet map[int64]string
	listErr   error
	searchErr error
	createErr error
	updateErr error
	deleteErr error
	setImgErr error
	byCuisErr error
}

func (f *fakeRepoDB) ListRecipesByAccount(_ context.Context, accountID int64) ([]entity.Recipe, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []entity.Recipe
	for _, rec := range f.recipes {
		if rec.AccountID == accountID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepoDB) SearchRecipesByName(context.Context, string) ([]entity.Recipe, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.recipes, nil
}

func (f *fakeRepoDB) ListRecipesByCuisine(context.Context, string) ([]entity.Recipe, error) {
	if f.byCuisErr != nil {
		return nil, f.byCuisErr
	}
	return f.recipes, nil
}

func (f *fakeRepoDB) CreateRecipe(_ context.Context, in entity.NewRecipe) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeRepoDB) UpdateRecipe(_ context.Context, in entity.NewRecipe) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, in)
	return nil
}

func (f *fakeRepoDB) DeleteRecipe(_ context.Context, recipeID, accountID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, [2]int64{recipeID, accountID})
	return nil
}

func (f *fakeRepoDB) SetRecipeImage(_ context.Context, recipeID, _ int64, imageURL string) error {
	if f.setImgErr != nil {
		return f.setImgErr
	}
	if f.imagesSet == nil {
		f.imagesSet = map[int64]string{}
	}
	f.imagesSet[recipeID] = imageURL
	return nil
}

type fakeMealFinder struct {
	meals []entity.Meal
	err   error
}

func (f *fakeMealFinder) Search(context.Context, string) ([]entity.Meal, error) {
	return f.meals, f.err
}

func (f *fakeMealFinder) FilterByCategory(context.Context, string) ([]entity.Meal, error) {
	return f.meals, f.err
}

type fakeStorage struct {
	putKeys []string
	putErr  error
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) PutObject(_ context.Context, _, key string, r io.Reader, _ storage.PutOptions) (storage.ObjectInfo, error) {
	if f.putErr != nil {
		return storage.ObjectInfo{}, f.putErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return storage.ObjectInfo{}, err
	}
	f.putKeys = append(f.putKeys, key)
	return storage.ObjectInfo{Key: key}, nil
}

func (f *fakeStorage) GetObject(context.Context, string, string) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, nil
}

func (f *fakeStorage) StatObject(context.Context, string, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, nil
}

func (f *fakeStorage) DeleteObject(context.Context, string, string) error { return nil }

func (f *fakeStorage) ListObjects(context.Context, string, string, int) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (f *fakeStorage) PresignGet(context.Context, string, string, time.Duration) (string, error) {
	return "", nil
}

func (f *fakeStorage) PresignPut(context.Context, string, string, storage.PutOptions, time.Duration) (string, error) {
	return "", nil
}

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type fixedStringID struct{ v string }

func (f fixedStringID) Generate() string { return f.v }

type stubConfig struct {
	strings map[string]string
	int64s  map[string]int64
}

func (stubConfig) Close() error { return nil }

func (stubConfig) GetSecond(string) time.Duration { return time.Second }

func (stubConfig) GetMinute(string) time.Duration { return time.Minute }

func (stubConfig) GetHour(string) time.Duration { return time.Hour }

func (stubConfig) GetDay(string) time.Duration { return 0 }

func (stubConfig) GetInt(string) int { return 0 }

func (stubConfig) GetInt32(string) int32 { return 0 }

func (c stubConfig) GetInt64(key string) int64 { return c.int64s[key] }

func (stubConfig) GetUint(string) uint { return 0 }

func (stubConfig) GetUint16(string) uint16 { return 0 }

func (stubConfig) GetUint32(string) uint32 { return 0 }

func (stubConfig) GetUint64(string) uint64 { return 0 }

func (stubConfig) GetFloat32(string) float32 { return 0 }

func (stubConfig) GetFloat64(string) float64 { return 0 }

func (stubConfig) GetBool(string) bool { return false }

func (c stubConfig) GetString(key string) string { return c.strings[key] }

func (stubConfig) GetBinary(string) []byte { return nil }

func (stubConfig) GetArray(string) []string { return nil }

func (stubConfig) GetMap(string) map[string]string { return nil }

type usecaseFixture struct {
	uc      *Usecase
	repo    *fakeRepoDB
	meals   *fakeMealFinder
	storage *fakeStorage
}

func newFixture(tb interface{ Fatalf(string, ...any) }) *usecaseFixture {
	v, err := validator.NewV10Validator()
	if err != nil {
		tb.Fatalf("failed to build validator: %v", err)
	}

	repo := &fakeRepoDB{}
	meals := &fakeMealFinder{}
	store := &fakeStorage{}

	uc := New(Dependency{
		RepoDB:    repo,
		Meals:     meals,
		Storage:   store,
		Validator: v,
		Config: stubConfig{
			strings: map[string]string{
				"modules.recipe.image_bucket":   "veggiefinder-images",
				"modules.recipe.image_base_url": "https://cdn.example.com",
			},
			int64s: map[string]int64{"modules.recipe.image_max_size_bytes": 1 << 20},
		},
		UID:        &seqNumberID{next: 500},
		UUID:       fixedStringID{v: "image-key"},
		Instrument: instrument.NewNoop(),
	})

	return &usecaseFixture{uc: uc, repo: repo, meals: meals, storage: store}
}

func authedCtx(accountID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: accountID, UserEmail: "alice@example.com"})
}
