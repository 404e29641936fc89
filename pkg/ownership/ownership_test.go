package ownership

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"vidtube.com/pkg/errno"
)

type record struct{ owner int64 }

func (r *record) OwnerID() int64 { return r.owner }

func getter(rec *record, err error) func(context.Context, int64) (*record, error) {
	return func(context.Context, int64) (*record, error) { return rec, err }
}

func TestLoadOwned(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	tests := []struct {
		name    string
		get     func(context.Context, int64) (*record, error)
		actor   int64
		code    int64
		message string
	}{
		{name: "owner", get: getter(&record{owner: 1}, nil), actor: 1},
		{name: "missing", get: getter(nil, gorm.ErrRecordNotFound), actor: 1, code: errno.NotFoundCode, message: "Comment not found"},
		{name: "stranger", get: getter(&record{owner: 1}, nil), actor: 2, code: errno.ForbiddenCode, message: "Not authorized to update this comment"},
		{name: "store failure", get: getter(nil, boom), actor: 1, code: errno.ServiceErrCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := LoadOwned(ctx, "Comment", 10, tt.actor, "update", tt.get)
			if tt.code == 0 {
				if err != nil || rec == nil {
					t.Fatalf("expected record, got %v, %v", rec, err)
				}
				return
			}
			if rec != nil {
				t.Fatalf("expected no record on error")
			}
			e := errno.ConvertErr(err)
			if e.ErrCode != tt.code {
				t.Fatalf("code = %d, want %d", e.ErrCode, tt.code)
			}
			if tt.message != "" && e.ErrMsg != tt.message {
				t.Fatalf("message = %q, want %q", e.ErrMsg, tt.message)
			}
		})
	}
}
