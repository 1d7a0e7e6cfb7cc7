package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/SiphoChris/afrilex/internal/domain"
)

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}
		return mapResults(keys, byID)
	}
}

func newDictionaryBatchFn(repo dictionaryRepo) dataloader.BatchFunc[string, *domain.Dictionary] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Dictionary] {
		dicts, err := repo.GetByLanguages(ctx, keys)
		if err != nil {
			return errorResults[*domain.Dictionary](len(keys), err)
		}

		byCode := make(map[string]*domain.Dictionary, len(dicts))
		for i := range dicts {
			byCode[dicts[i].LanguageCode] = &dicts[i]
		}
		return mapResults(keys, byCode)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps results back to key order. Missing keys get the zero value.
func mapResults[K comparable, V any](keys []K, found map[K]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
