package puzzle

// Grid stores the logical puzzle state as row-major cell values. Values run
// 0..n*n-1 where 0 marks the blank; each value appears exactly once.
type Grid struct {
	n    int
	data []int
}

// NewGrid allocates an n*n grid in the solved configuration: ascending
// numbers with the blank in the last cell.
func NewGrid(n int) *Grid {
	if n < 1 {
		n = 1
	}
	g := &Grid{n: n, data: make([]int, n*n)}
	g.Solve()
	return g
}

// Size returns the grid dimension n.
func (g *Grid) Size() int { return g.n }

// Index returns the linear slice index for cell (row, col).
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// At returns the value stored at (row, col).
func (g *Grid) At(row, col int) int { return g.data[g.Index(row, col)] }

// Set writes v to cell (row, col).
func (g *Grid) Set(row, col, v int) { g.data[g.Index(row, col)] = v }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []int { return g.data }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Solve rewrites the grid to the solved configuration.
func (g *Grid) Solve() {
	for i := range g.data {
		g.data[i] = i + 1
	}
	g.data[len(g.data)-1] = 0
}

// Solved reports whether every cell holds its solved value: row*n+col+1
// everywhere except the final cell, which holds the blank.
func (g *Grid) Solved() bool {
	last := len(g.data) - 1
	for i, v := range g.data {
		if i == last {
			return v == 0
		}
		if v != i+1 {
			return false
		}
	}
	return true
}
