package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/dms-backend/internal/domain"
)

// newUsersBatchFn resolves users by id. Unknown ids yield a nil user, not an error.
func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		return mapResults(keys, byID, nilValue[*domain.User])
	}
}

// LoadUsers resolves the given ids through the request's loader in one batch.
// Missing users are absent from the result map.
func LoadUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	l := FromContext(ctx)
	if l == nil || len(ids) == 0 {
		return map[uuid.UUID]*domain.User{}, nil
	}

	users, errs := l.UserByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID]*domain.User, len(ids))
	for i, u := range users {
		if u != nil {
			out[ids[i]] = u
		}
	}
	return out, nil
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() T {
	var zero T
	return zero
}
