// Package ownership loads a record and checks the acting user owns it.
package ownership

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/pkg/errno"
)

type Owned interface {
	OwnerID() int64
}

// Load fetches a record with get. A missing record maps to NotFound with the
// message "<Kind> not found".
func Load[T Owned](ctx context.Context, kind string, id int64, get func(context.Context, int64) (T, error)) (T, error) {
	rec, err := get(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errno.NotFound.WithMessagef("%s not found", kind)
		}
		return zero, errors.WithMessagef(err, "load %s %d", kind, id)
	}
	return rec, nil
}

// Check fails with Forbidden unless actor owns rec.
func Check(rec Owned, actor int64, action, kind string) error {
	if rec.OwnerID() != actor {
		return errno.Forbidden.WithMessagef("Not authorized to %s this %s", action, lower(kind))
	}
	return nil
}

// LoadOwned is Load followed by Check.
func LoadOwned[T Owned](ctx context.Context, kind string, id, actor int64, action string, get func(context.Context, int64) (T, error)) (T, error) {
	rec, err := Load(ctx, kind, id, get)
	if err != nil {
		return rec, err
	}
	if err = Check(rec, actor, action, kind); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func lower(s string) string {
	b := []byte(s)
	if len(b) > 0 && b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
