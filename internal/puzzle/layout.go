package puzzle

// Layout positions the board on the drawing surface: (X, Y) anchors the
// top-left corner, BlockSize is the tile edge length and BlockGap the
// spacing between adjacent tiles, all in pixels.
type Layout struct {
	X, Y      float64
	BlockSize float64
	BlockGap  float64
}

// CellOrigin returns the pixel position of the top-left corner of cell
// (row, col).
func (l Layout) CellOrigin(row, col int) (x, y float64) {
	x = l.X + float64(col)*(l.BlockSize+l.BlockGap)
	y = l.Y + float64(row)*(l.BlockSize+l.BlockGap)
	return x, y
}

// Span returns the edge length of the square occupied by an n-wide board:
// n tiles plus n-1 gaps.
func (l Layout) Span(n int) float64 {
	if n < 1 {
		return 0
	}
	return float64(n)*l.BlockSize + float64(n-1)*l.BlockGap
}
