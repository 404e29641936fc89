package utils

import (
	"math"
	"testing"

	"vidtube.com/pkg/constants"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int64
		wantPage, wantLimit int64
	}{
		{1, 10, 1, 10},
		{0, 0, 1, constants.DefaultLimit},
		{-4, -1, 1, constants.DefaultLimit},
		{3, 1000, 3, constants.MaxLimit},
		{2, constants.MaxLimit, 2, constants.MaxLimit},
		{math.MaxInt64, 100, math.MaxInt64 / 100, 100},
		{math.MaxInt64, 0, math.MaxInt64 / constants.DefaultLimit, constants.DefaultLimit},
		{math.MaxInt64, 1, math.MaxInt64, 1},
	}
	for _, tt := range tests {
		page, limit := NormalizePage(tt.page, tt.limit)
		if page != tt.wantPage || limit != tt.wantLimit {
			t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{15, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{0, 10, 0},
		{1, 100, 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
	if got := Offset(2, 10); got != 10 {
		t.Errorf("Offset(2, 10) = %d", got)
	}
}

func TestOffsetNeverNegative(t *testing.T) {
	tests := []struct {
		page, limit int64
	}{
		{math.MaxInt64, 100},
		{math.MaxInt64, 10},
		{math.MaxInt64 / 100, 100},
		{math.MaxInt64, 1},
	}
	for _, tt := range tests {
		page, limit := NormalizePage(tt.page, tt.limit)
		if got := Offset(page, limit); got < 0 {
			t.Errorf("Offset(NormalizePage(%d, %d)) = %d", tt.page, tt.limit, got)
		}
		if got := Offset(tt.page, tt.limit); got < 0 {
			t.Errorf("Offset(%d, %d) = %d", tt.page, tt.limit, got)
		}
	}
}
