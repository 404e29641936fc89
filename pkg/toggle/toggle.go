// Package toggle flips a per-(actor, target) relation on or off.
package toggle

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/pkg/lock"
)

// Relation is the store side of one toggleable edge. Find returns a nil
// record when the edge is absent.
type Relation[T any] struct {
	Find   func(ctx context.Context) (*T, error)
	Create func(ctx context.Context) (*T, error)
	Remove func(ctx context.Context, rec *T) error
}

type Result[T any] struct {
	Added  bool
	Record *T
}

// Do removes the edge when present and creates it otherwise, holding key for
// the whole read-modify-write. An insert rejected by the unique index means
// another writer added the edge first; the stored record is returned as added.
// If that record is already gone again the insert is retried once.
func Do[T any](ctx context.Context, key string, rel Relation[T]) (Result[T], error) {
	unlock, err := lock.Default.Lock(ctx, key)
	if err != nil {
		return Result[T]{}, err
	}
	defer unlock()

	existing, err := rel.Find(ctx)
	if err != nil {
		return Result[T]{}, err
	}
	if existing != nil {
		if err = rel.Remove(ctx, existing); err != nil {
			return Result[T]{}, err
		}
		return Result[T]{Added: false, Record: existing}, nil
	}

	for attempt := 0; ; attempt++ {
		created, err := rel.Create(ctx)
		if err == nil {
			return Result[T]{Added: true, Record: created}, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt > 0 {
			return Result[T]{}, err
		}
		existing, err = rel.Find(ctx)
		if err != nil {
			return Result[T]{}, err
		}
		if existing != nil {
			return Result[T]{Added: true, Record: existing}, nil
		}
	}
}
