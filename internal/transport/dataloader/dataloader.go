// Package dataloader provides per-request DataLoaders that batch the lookups
// made while rendering word listings (creators and owning dictionaries) into
// single SQL calls. DataLoaders call repositories directly, bypassing the
// service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/SiphoChris/afrilex/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type dictionaryRepo interface {
	GetByLanguages(ctx context.Context, codes []string) ([]domain.Dictionary, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	User       userRepo
	Dictionary dictionaryRepo
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders. Missing keys resolve to nil.
type Loaders struct {
	UserByID             *dataloader.Loader[uuid.UUID, *domain.User]
	DictionaryByLanguage *dataloader.Loader[string, *domain.Dictionary]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:             newLoader(newUserBatchFn(repos.User)),
		DictionaryByLanguage: newLoader(newDictionaryBatchFn(repos.Dictionary)),
	}
}

func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
