package puzzle

import "time"

// DefaultSlideDuration is the slide length used when a caller passes a
// non-positive duration to SetPixelPosition.
const DefaultSlideDuration = 130 * time.Millisecond

// Tile is one cell of the puzzle. Value and the logical (Row, Col) cell are
// owned by the Board; the pixel fields are a derived, animatable projection
// of the logical cell that the rendering layer reads every frame.
type Tile struct {
	Value int
	Row   int
	Col   int

	// Pixel-space position of the tile's top-left corner and its edge
	// length. Mid-slide these lag the logical cell.
	X, Y float64
	Size float64

	fromX, fromY     float64
	targetX, targetY float64
	pendingRow       int
	pendingCol       int
	elapsed          time.Duration
	duration         time.Duration
	animating        bool
}

func newTile(value, row, col int, x, y, size float64) *Tile {
	return &Tile{
		Value: value,
		Row:   row, Col: col,
		X: x, Y: y, Size: size,
		pendingRow: row, pendingCol: col,
	}
}

// SetPixelPosition moves the tile to (x, y) without changing its logical
// cell. When animate is false the position snaps synchronously; otherwise an
// eased slide of duration d begins and is driven by Advance.
func (t *Tile) SetPixelPosition(x, y float64, animate bool, d time.Duration) {
	t.moveTo(x, y, t.pendingRow, t.pendingCol, animate, d)
}

// moveTo starts a move toward pixel (x, y) and records (row, col) as the
// pending logical cell. The logical cell is finalized only when the slide
// settles, which is the synchronization point the Board's queue relies on.
func (t *Tile) moveTo(x, y float64, row, col int, animate bool, d time.Duration) {
	t.pendingRow, t.pendingCol = row, col
	if !animate {
		t.X, t.Y = x, y
		t.Row, t.Col = row, col
		t.animating = false
		return
	}
	if d <= 0 {
		d = DefaultSlideDuration
	}
	t.fromX, t.fromY = t.X, t.Y
	t.targetX, t.targetY = x, y
	t.elapsed = 0
	t.duration = d
	t.animating = true
}

// Advance ticks an in-flight slide by dt and reports whether it settled on
// this call. Settling snaps the pixel position to the target and finalizes
// the pending logical cell.
func (t *Tile) Advance(dt time.Duration) bool {
	if !t.animating {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.finish()
		return true
	}
	k := easeInOut(float64(t.elapsed) / float64(t.duration))
	t.X = t.fromX + (t.targetX-t.fromX)*k
	t.Y = t.fromY + (t.targetY-t.fromY)*k
	return false
}

// finish completes the slide immediately.
func (t *Tile) finish() {
	t.X, t.Y = t.targetX, t.targetY
	t.Row, t.Col = t.pendingRow, t.pendingCol
	t.animating = false
}

// Animating reports whether a slide is in flight.
func (t *Tile) Animating() bool { return t.animating }

// Contains hit-tests (x, y) against the tile's current pixel footprint,
// which may be mid-slide. The blank never matches.
func (t *Tile) Contains(x, y float64) bool {
	if t.Value == 0 {
		return false
	}
	return x >= t.X && x < t.X+t.Size && y >= t.Y && y < t.Y+t.Size
}

// easeInOut is a quadratic ease over k in [0, 1].
func easeInOut(k float64) float64 {
	if k < 0 {
		return 0
	}
	if k > 1 {
		return 1
	}
	if k < 0.5 {
		return 2 * k * k
	}
	return 1 - 2*(1-k)*(1-k)
}
