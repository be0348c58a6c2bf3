package puzzle

import "testing"

func TestNewGridSolvedLayout(t *testing.T) {
	g := NewGrid(4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := row*4 + col + 1
			if row == 3 && col == 3 {
				want = 0
			}
			if got := g.At(row, col); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", row, col, got, want)
			}
		}
	}
	if !g.Solved() {
		t.Fatalf("fresh grid not solved")
	}
}

func TestGridSolvedDetectsDisorder(t *testing.T) {
	g := NewGrid(4)
	v := g.At(0, 0)
	g.Set(0, 0, g.At(0, 1))
	g.Set(0, 1, v)
	if g.Solved() {
		t.Fatalf("swapped grid reported solved")
	}
	g.Solve()
	if !g.Solved() {
		t.Fatalf("Solve did not restore the grid")
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(3)
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 3, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.row, c.col); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}
