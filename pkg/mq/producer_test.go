package mq

import (
	"context"
	"encoding/json"
	"testing"
)

func TestEmitRecords(t *testing.T) {
	rec := &Recorder{}
	old := Default
	Default = rec
	defer func() { Default = old }()

	Emit(context.Background(), NewEvent(EventLikeAdded, 1, "video", 2))
	Emit(context.Background(), NewEvent(EventLikeRemoved, 1, "video", 2))

	types := rec.Types()
	if len(types) != 2 || types[0] != EventLikeAdded || types[1] != EventLikeRemoved {
		t.Fatalf("types = %v", types)
	}
}

func TestEventJSON(t *testing.T) {
	e := NewEvent(EventSubscribed, 7, "user", 9)
	if e.EventID == "" || e.Timestamp == 0 {
		t.Fatalf("event not stamped: %+v", e)
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["actorId"] != "7" || m["targetId"] != "9" {
		t.Fatalf("ids must be strings: %s", data)
	}
}
