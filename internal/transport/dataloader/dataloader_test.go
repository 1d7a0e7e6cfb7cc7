package dataloader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiphoChris/afrilex/internal/domain"
	dl "github.com/SiphoChris/afrilex/internal/transport/dataloader"
)

// ---------------------------------------------------------------------------
// Mock repos
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	result []domain.User
	err    error
	calls  atomic.Int32
}

func (m *mockUserRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.User, error) {
	m.calls.Add(1)
	return m.result, m.err
}

type mockDictionaryRepo struct {
	result []domain.Dictionary
	err    error
	keys   []string
}

func (m *mockDictionaryRepo) GetByLanguages(_ context.Context, codes []string) ([]domain.Dictionary, error) {
	m.keys = append(m.keys, codes...)
	return m.result, m.err
}

func emptyRepos() *dl.Repos {
	return &dl.Repos{
		User:       &mockUserRepo{},
		Dictionary: &mockDictionaryRepo{},
	}
}

// ---------------------------------------------------------------------------
// Context / Middleware tests
// ---------------------------------------------------------------------------

func TestFromContext_ReturnsLoaders(t *testing.T) {
	loaders := dl.NewLoaders(emptyRepos())
	ctx := dl.WithLoaders(context.Background(), loaders)

	assert.Equal(t, loaders, dl.FromContext(ctx))
}

func TestFromContext_PanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() {
		dl.FromContext(context.Background())
	})
}

func TestMiddleware_InjectsLoaders(t *testing.T) {
	mw := dl.Middleware(emptyRepos())

	var gotLoaders *dl.Loaders
	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotLoaders = dl.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/words", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, gotLoaders)
	assert.NotNil(t, gotLoaders.UserByID)
	assert.NotNil(t, gotLoaders.DictionaryByLanguage)
}

// ---------------------------------------------------------------------------
// Batch function tests
// ---------------------------------------------------------------------------

func TestUserLoader_BatchesAndMaps(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	users := &mockUserRepo{result: []domain.User{{ID: u2, Name: "Two"}, {ID: u1, Name: "One"}}}
	repos := emptyRepos()
	repos.User = users

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	thunk1 := loaders.UserByID.Load(ctx, u1)
	thunk2 := loaders.UserByID.Load(ctx, u2)
	thunkMissing := loaders.UserByID.Load(ctx, uuid.New())

	got1, err := thunk1()
	require.NoError(t, err)
	assert.Equal(t, "One", got1.Name)
	got2, err := thunk2()
	require.NoError(t, err)
	assert.Equal(t, "Two", got2.Name)
	missing, err := thunkMissing()
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, int32(1), users.calls.Load())
}

func TestDictionaryLoader_MapsByLanguage(t *testing.T) {
	dicts := &mockDictionaryRepo{result: []domain.Dictionary{{LanguageCode: "xh"}}}
	repos := emptyRepos()
	repos.Dictionary = dicts

	loaders := dl.NewLoaders(repos)

	got, err := loaders.DictionaryByLanguage.Load(context.Background(), "xh")()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "xh", got.LanguageCode)
	assert.Equal(t, []string{"xh"}, dicts.keys)
}

func TestUserLoader_PropagatesError(t *testing.T) {
	repos := emptyRepos()
	repos.User = &mockUserRepo{err: errors.New("db down")}

	_, err := dl.NewLoaders(repos).UserByID.Load(context.Background(), uuid.New())()

	assert.ErrorContains(t, err, "db down")
}
