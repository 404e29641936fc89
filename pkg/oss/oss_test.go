package oss

import "testing"

func TestObjectName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"clip.MP4", "video/42/video.mp4"},
		{"clip", "video/42/video"},
		{"a.b.webm", "video/42/video.webm"},
	}
	for _, tt := range tests {
		if got := ObjectName("video", 42, "video", tt.filename); got != tt.want {
			t.Errorf("ObjectName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestNewMinioPublicURL(t *testing.T) {
	m, err := NewMinio("localhost:9000", "k", "s", false, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.publicURL != "http://localhost:9000" {
		t.Fatalf("publicURL = %q", m.publicURL)
	}
	m, err = NewMinio("localhost:9000", "k", "s", true, "https://cdn.example.com/")
	if err != nil {
		t.Fatal(err)
	}
	if m.publicURL != "https://cdn.example.com" {
		t.Fatalf("publicURL = %q", m.publicURL)
	}
}
