package utils

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "plain", raw: "42", want: 42},
		{name: "snowflake", raw: "172698538491396096", want: 172698538491396096},
		{name: "padded", raw: " 7 ", want: 7},
		{name: "empty", raw: "", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "hex object id", raw: "64b7f0c2a1e4d2b9c8f1a2b3", wantErr: true},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "overflow", raw: "99999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	if got := Transfer("172698538491396096"); got != 172698538491396096 {
		t.Fatalf("Transfer(string) = %d", got)
	}
	if got := Transfer(float64(12)); got != 12 {
		t.Fatalf("Transfer(float64) = %d", got)
	}
	if got := Transfer(int64(5)); got != 5 {
		t.Fatalf("Transfer(int64) = %d", got)
	}
	if got := Transfer(true); got != -1 {
		t.Fatalf("Transfer(bool) = %d, want -1", got)
	}
}

func TestNextIDUnique(t *testing.T) {
	seen := make(map[int64]struct{}, 10000)
	var last int64
	for i := 0; i < 10000; i++ {
		id := NextID()
		if id <= last {
			t.Fatalf("ids not increasing: %d after %d", id, last)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
		last = id
	}
}
