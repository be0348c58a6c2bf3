package score

import (
	"testing"
	"time"
)

func TestStarsTable(t *testing.T) {
	cases := []struct {
		size    int
		elapsed time.Duration
		want    int
	}{
		{4, 0, 3},
		{4, 59 * time.Second, 3},
		{4, 60 * time.Second, 3},
		{4, 61 * time.Second, 2},
		{4, 180 * time.Second, 2},
		{4, 181 * time.Second, 1},
		{4, 300 * time.Second, 1},
		{4, 301 * time.Second, 0},
		{5, 120 * time.Second, 3},
		{5, 121 * time.Second, 2},
		{5, 360 * time.Second, 2},
		{5, 720 * time.Second, 1},
		{5, 721 * time.Second, 0},
	}
	for _, c := range cases {
		if got := Stars(c.size, c.elapsed); got != c.want {
			t.Fatalf("Stars(%d, %v) = %d, want %d", c.size, c.elapsed, got, c.want)
		}
	}
}

func TestStarsScalesUnknownSizes(t *testing.T) {
	// A 6x6 board has 35 tiles; thresholds scale the 4x4 row by 35/15.
	if got := Stars(6, 140*time.Second); got != 3 {
		t.Fatalf("Stars(6, 140s) = %d, want 3", got)
	}
	if got := Stars(6, 141*time.Second); got != 2 {
		t.Fatalf("Stars(6, 141s) = %d, want 2", got)
	}
}

func TestStarsNeverRewardsSlowerSolves(t *testing.T) {
	for _, size := range []int{4, 5} {
		prev := MaxStars
		for sec := 0; sec <= 800; sec++ {
			got := Stars(size, time.Duration(sec)*time.Second)
			if got > prev {
				t.Fatalf("size %d: rating rose from %d to %d at %ds", size, prev, got, sec)
			}
			prev = got
		}
	}
}
