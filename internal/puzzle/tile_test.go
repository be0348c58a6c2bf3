package puzzle

import (
	"testing"
	"time"
)

func TestTileSnapSettlesImmediately(t *testing.T) {
	tile := newTile(7, 1, 2, 10, 20, 50)
	tile.moveTo(70, 20, 1, 3, false, 0)
	if tile.Animating() {
		t.Fatalf("snap left the tile animating")
	}
	if tile.X != 70 || tile.Y != 20 {
		t.Fatalf("tile at (%v,%v), want (70,20)", tile.X, tile.Y)
	}
	if tile.Row != 1 || tile.Col != 3 {
		t.Fatalf("tile cell (%d,%d), want (1,3)", tile.Row, tile.Col)
	}
}

func TestTileSlideFinalizesCellOnSettle(t *testing.T) {
	tile := newTile(7, 1, 2, 10, 20, 50)
	tile.moveTo(70, 20, 1, 3, true, 100*time.Millisecond)
	if !tile.Animating() {
		t.Fatalf("animated move did not start a slide")
	}

	if done := tile.Advance(40 * time.Millisecond); done {
		t.Fatalf("slide settled after 40ms of 100ms")
	}
	if tile.Row != 1 || tile.Col != 2 {
		t.Fatalf("cell finalized mid-slide: (%d,%d)", tile.Row, tile.Col)
	}
	if tile.X <= 10 || tile.X >= 70 {
		t.Fatalf("mid-slide x = %v, want strictly between 10 and 70", tile.X)
	}

	if done := tile.Advance(60 * time.Millisecond); !done {
		t.Fatalf("slide did not settle at its full duration")
	}
	if tile.X != 70 || tile.Y != 20 {
		t.Fatalf("settled at (%v,%v), want (70,20)", tile.X, tile.Y)
	}
	if tile.Row != 1 || tile.Col != 3 {
		t.Fatalf("cell (%d,%d) after settle, want (1,3)", tile.Row, tile.Col)
	}
	if tile.Advance(time.Millisecond) {
		t.Fatalf("Advance reported settle twice")
	}
}

func TestTileDefaultSlideDuration(t *testing.T) {
	tile := newTile(3, 0, 0, 0, 0, 50)
	tile.SetPixelPosition(50, 0, true, 0)
	if tile.duration != DefaultSlideDuration {
		t.Fatalf("duration %v, want %v", tile.duration, DefaultSlideDuration)
	}
}

func TestTileContains(t *testing.T) {
	tile := newTile(5, 0, 0, 10, 10, 50)
	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{59, 59, true},
		{60, 10, false},
		{10, 60, false},
		{9, 10, false},
		{35, 35, true},
	}
	for _, c := range cases {
		if got := tile.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	blank := newTile(0, 0, 0, 10, 10, 50)
	if blank.Contains(35, 35) {
		t.Fatalf("blank tile matched a hit-test")
	}
}

func TestTileContainsTracksMidSlidePosition(t *testing.T) {
	tile := newTile(5, 0, 0, 0, 0, 50)
	tile.moveTo(200, 0, 0, 3, true, 100*time.Millisecond)
	tile.Advance(50 * time.Millisecond)

	if !tile.Contains(tile.X+1, 1) {
		t.Fatalf("hit-test missed the tile at its mid-slide position %v", tile.X)
	}
	if tile.Contains(1, 1) {
		t.Fatalf("hit-test matched the vacated origin")
	}
}

func TestEaseInOutEndpoints(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := easeInOut(c.in); got != c.want {
			t.Fatalf("easeInOut(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
