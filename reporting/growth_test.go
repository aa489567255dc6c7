package reporting

import (
	"math"
	"testing"
	"time"
)

func TestGrowth(t *testing.T) {
	tests := []struct {
		current, previous float64
		want              float64
	}{
		{150, 100, 50},
		{100, 100, 0},
		{50, 100, -50},
		{0, 100, -100},
		{0, 0, 0},
		{5, 0, 100},
		{0.01, 0, 100},
		{-20, 0, 0},
		{75, 50, 50},
	}
	for _, tt := range tests {
		got := Growth(tt.current, tt.previous)
		if math.IsNaN(got) {
			t.Fatalf("Growth(%v, %v) = NaN", tt.current, tt.previous)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Growth(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
		}
	}
}

func TestPreviousWindow(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	prev := PreviousWindow(Window{Start: start, End: end})
	if !prev.End.Equal(start) {
		t.Errorf("previous end = %v, want %v", prev.End, start)
	}
	wantStart := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	if !prev.Start.Equal(wantStart) {
		t.Errorf("previous start = %v, want %v", prev.Start, wantStart)
	}
	if prev.Duration() != 10*24*time.Hour {
		t.Errorf("previous duration = %v", prev.Duration())
	}
}

func TestPreviousWindowZeroWidth(t *testing.T) {
	instant := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	prev := PreviousWindow(Window{Start: instant, End: instant})

	if prev.Duration() != 24*time.Hour {
		t.Errorf("zero-width previous duration = %v, want 24h", prev.Duration())
	}
	if !prev.End.Equal(instant) {
		t.Errorf("previous end = %v, want %v", prev.End, instant)
	}
}
