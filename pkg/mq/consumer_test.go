package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestRouterDispatch(t *testing.T) {
	var liked, other []string
	r := NewRouter()
	r.Handle(EventLikeAdded, func(_ context.Context, e *Event) error {
		liked = append(liked, e.EventID)
		return nil
	})
	r.Fallback(func(_ context.Context, e *Event) error {
		other = append(other, e.Type)
		return nil
	})

	body := func(e *Event) []byte {
		data, err := json.Marshal(e)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}
	like := NewEvent(EventLikeAdded, 1, "video", 2)
	if err := r.Dispatch(context.Background(), body(like)); err != nil {
		t.Fatal(err)
	}
	if err := r.Dispatch(context.Background(), body(NewEvent(EventTweetCreated, 1, "tweet", 3))); err != nil {
		t.Fatal(err)
	}
	if len(liked) != 1 || liked[0] != like.EventID {
		t.Fatalf("liked = %v", liked)
	}
	if len(other) != 1 || other[0] != EventTweetCreated {
		t.Fatalf("fallback = %v", other)
	}
}

func TestRouterMalformed(t *testing.T) {
	r := NewRouter()
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"no type", `{"eventId":"x"}`},
		{"bad id", `{"type":"like.added","actorId":12}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Dispatch(context.Background(), []byte(tt.body)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestRouterHandlerError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRouter()
	r.Handle(EventVideoDeleted, func(context.Context, *Event) error { return boom })
	data, _ := json.Marshal(NewEvent(EventVideoDeleted, 1, "video", 2))
	err := r.Dispatch(context.Background(), data)
	if !errors.Is(err, boom) || errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v", err)
	}
	if got := r.Types(); len(got) != 1 || got[0] != EventVideoDeleted {
		t.Fatalf("types = %v", got)
	}
}

func TestRouterWithoutFallbackAcks(t *testing.T) {
	data, _ := json.Marshal(NewEvent(EventSubscribed, 1, "user", 2))
	if err := NewRouter().Dispatch(context.Background(), data); err != nil {
		t.Fatalf("unhandled types must be acknowledged, got %v", err)
	}
}

func TestRouterTypesSorted(t *testing.T) {
	r := NewRouter()
	noop := func(context.Context, *Event) error { return nil }
	for _, typ := range []string{EventVideoDeleted, EventLikeAdded, EventCommentCreated} {
		r.Handle(typ, noop)
	}
	r.Fallback(noop)
	got := r.Types()
	want := []string{"comment.created", "like.added", "video.deleted"}
	if len(got) != len(want) {
		t.Fatalf("types = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("types = %v, want %v", got, want)
		}
	}
}
