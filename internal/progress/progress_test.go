package progress

import (
	"testing"
	"time"
)

func TestBarTracksCurrentAndTotal(t *testing.T) {
	b := New(100)
	if b.total != 100 {
		t.Errorf("total = %d, want 100", b.total)
	}
	if b.current != 0 {
		t.Errorf("current = %d, want 0", b.current)
	}

	b.Update(50)
	if b.current != 50 {
		t.Errorf("current after Update(50) = %d, want 50", b.current)
	}

	b.Finish()
	if b.current != b.total {
		t.Errorf("current after Finish = %d, want %d", b.current, b.total)
	}
}

func TestEstimateTime(t *testing.T) {
	got := EstimateTime(1000, 100.0)
	if want := 10 * time.Second; got != want {
		t.Errorf("EstimateTime = %v, want %v", got, want)
	}
	if got := EstimateTime(1000, 0); got != 0 {
		t.Errorf("EstimateTime with zero rate = %v, want 0", got)
	}
	if got := EstimateTime(1000, -10); got != 0 {
		t.Errorf("EstimateTime with negative rate = %v, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5.0s"},
		{90 * time.Second, "1.5m"},
		{2 * time.Hour, "2.0h"},
		{48 * time.Hour, "2.0d"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
