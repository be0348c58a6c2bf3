package puzzle

import (
	"fmt"
	"time"

	"numslide/pkg/core"
)

// MoveDuration is the slide length the board uses for player moves.
const MoveDuration = 180 * time.Millisecond

// SoundPlayer receives the fire-and-forget move sound on every accepted
// move. Injected so the board and its tests carry no process-wide audio
// state; nil means silent.
type SoundPlayer interface {
	PlayMove()
}

// MoveRecord captures one accepted player move for audit or a future undo.
type MoveRecord struct {
	Value   int
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

// moveRequest is a queued move that arrived while a slide was in flight.
type moveRequest struct {
	tile    *Tile
	animate bool
}

// Board is the sole authority over puzzle state: the grid, the blank cell,
// move legality, scrambling, win detection and the FIFO queue that keeps at
// most one slide in flight at a time.
//
// The board is tick-driven: callers invoke Step once per frame to advance
// the in-flight slide and any active scramble. All methods must be called
// from the same goroutine as Step.
type Board struct {
	size   int
	layout Layout
	grid   *Grid

	blankRow int
	blankCol int

	tiles []*Tile
	blank *Tile

	rng   *core.RNG
	sound SoundPlayer

	moves   int
	history []MoveRecord

	queue    []moveRequest
	inFlight *Tile

	scrambleLeft int
	lastDir      int

	destroyed bool
}

// NewBoard builds a solved size*size board with the blank in the last cell
// and one tile per cell placed at its laid-out pixel position. Size is fixed
// for the board's lifetime; sizes below 2 are a caller error.
func NewBoard(size int, layout Layout) (*Board, error) {
	if size < 2 {
		return nil, fmt.Errorf("puzzle: board size %d out of range (need >= 2)", size)
	}
	b := &Board{
		size:    size,
		layout:  layout,
		grid:    NewGrid(size),
		rng:     core.NewRNG(time.Now().UnixNano()),
		lastDir: -1,
	}
	b.buildTiles()
	return b, nil
}

// buildTiles recreates the tile set from the current grid.
func (b *Board) buildTiles() {
	b.tiles = b.tiles[:0]
	b.blank = nil
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			x, y := b.layout.CellOrigin(row, col)
			t := newTile(b.grid.At(row, col), row, col, x, y, b.layout.BlockSize)
			b.tiles = append(b.tiles, t)
			if t.Value == 0 {
				b.blank = t
				b.blankRow, b.blankCol = row, col
			}
		}
	}
}

// SetSeed reseeds the scramble RNG for deterministic shuffles.
func (b *Board) SetSeed(seed int64) { b.rng = core.NewRNG(seed) }

// SetSoundPlayer installs the move-sound sink. Passing nil silences moves.
func (b *Board) SetSoundPlayer(sp SoundPlayer) { b.sound = sp }

// Size returns the board dimension n.
func (b *Board) Size() int { return b.size }

// Tiles exposes the tile set, blank included, for rendering and hit-tests.
// Callers must not reorder or mutate the tiles.
func (b *Board) Tiles() []*Tile { return b.tiles }

// MoveCount returns the number of accepted player moves since the last
// reset or shuffle.
func (b *Board) MoveCount() int { return b.moves }

// History returns a copy of the accepted-move records since the last reset
// or shuffle.
func (b *Board) History() []MoveRecord {
	out := make([]MoveRecord, len(b.history))
	copy(out, b.history)
	return out
}

// BlankPosition returns the cell currently holding the blank.
func (b *Board) BlankPosition() (row, col int) { return b.blankRow, b.blankCol }

// At returns the value at cell (row, col).
func (b *Board) At(row, col int) int { return b.grid.At(row, col) }

// Animating reports whether a player move's slide is in flight.
func (b *Board) Animating() bool { return b.inFlight != nil }

// Shuffling reports whether a scramble is still draining.
func (b *Board) Shuffling() bool { return b.scrambleLeft > 0 }

// CanMove reports whether the tile at (row, col) may slide into the blank:
// true exactly for the blank's orthogonal neighbors, never for diagonals or
// the blank's own cell.
func (b *Board) CanMove(row, col int) bool {
	if !b.grid.InBounds(row, col) {
		return false
	}
	dr := row - b.blankRow
	dc := col - b.blankCol
	return dr*dr+dc*dc == 1
}

// MoveBlock is the single mutating entry point for player moves.
//
// The blank and tiles not adjacent to the blank are rejected with false and
// no state change; so is any move submitted while a scramble is draining,
// since the scramble owns the grid until it finishes. If another move's
// slide is in flight the request is appended to the FIFO queue and the call
// returns false immediately; the queued move is re-validated and applied, in
// submission order, as earlier slides settle. Otherwise the move is applied
// now: grid and blank update synchronously, the counter and history advance,
// the move sound fires, and the tile begins its slide (or snaps when animate
// is false). Calling MoveBlock on a destroyed board panics.
func (b *Board) MoveBlock(t *Tile, animate bool) bool {
	b.mustLive("MoveBlock")
	if b.scrambleLeft > 0 {
		return false
	}
	if t == nil || t.Value == 0 || !b.CanMove(t.Row, t.Col) {
		return false
	}
	if b.inFlight != nil {
		b.queue = append(b.queue, moveRequest{tile: t, animate: animate})
		return false
	}
	b.applyMove(t, animate)
	if b.inFlight == nil {
		b.drain()
	}
	return true
}

// applyMove mutates the grid for an already-validated move and starts the
// tile's slide. This and the scramble are the only grid mutation sites.
func (b *Board) applyMove(t *Tile, animate bool) {
	destRow, destCol := b.blankRow, b.blankCol
	b.history = append(b.history, MoveRecord{
		Value:   t.Value,
		FromRow: t.Row, FromCol: t.Col,
		ToRow: destRow, ToCol: destCol,
	})

	b.grid.Set(destRow, destCol, t.Value)
	b.grid.Set(t.Row, t.Col, 0)
	b.blankRow, b.blankCol = t.Row, t.Col

	// The blank tile is never rendered, so its cell updates immediately;
	// the moving tile's logical cell is finalized only when its slide
	// settles.
	bx, by := b.layout.CellOrigin(b.blankRow, b.blankCol)
	b.blank.moveTo(bx, by, b.blankRow, b.blankCol, false, 0)

	b.moves++
	if b.sound != nil {
		b.sound.PlayMove()
	}

	x, y := b.layout.CellOrigin(destRow, destCol)
	if animate {
		b.inFlight = t
		t.moveTo(x, y, destRow, destCol, true, MoveDuration)
		return
	}
	t.moveTo(x, y, destRow, destCol, false, 0)
}

// drain applies queued moves in FIFO order until one starts a slide or the
// queue empties. Entries that became illegal while waiting are dropped.
func (b *Board) drain() {
	for len(b.queue) > 0 && b.inFlight == nil {
		req := b.queue[0]
		b.queue = b.queue[1:]
		if req.tile == nil || req.tile.Value == 0 || !b.CanMove(req.tile.Row, req.tile.Col) {
			continue
		}
		b.applyMove(req.tile, req.animate)
	}
}

// MoveAtPosition finds the first non-blank tile whose pixel footprint
// contains (x, y) and delegates to MoveBlock. It returns false when no tile
// qualifies.
func (b *Board) MoveAtPosition(x, y float64, animate bool) bool {
	b.mustLive("MoveAtPosition")
	for _, t := range b.tiles {
		if t.Contains(x, y) {
			return b.MoveBlock(t, animate)
		}
	}
	return false
}

// Step advances the board by one frame: it progresses an active scramble by
// at most scrambleBatch blank-moves, then ticks the in-flight slide and, on
// settle, drains the next queued move. Call it once per frame from the same
// goroutine as every other board method.
func (b *Board) Step(dt time.Duration) {
	if b.destroyed {
		return
	}
	b.stepScramble()
	if t := b.inFlight; t != nil {
		if t.Advance(dt) {
			b.inFlight = nil
			b.drain()
		}
	}
}

// CheckWin reports whether the grid is solved. The board never emits a win
// event itself; the owning scene decides what winning means.
func (b *Board) CheckWin() bool { return b.grid.Solved() }

// Contains hit-tests (x, y) against the board's occupied rectangle.
func (b *Board) Contains(x, y float64) bool {
	span := b.layout.Span(b.size)
	return x >= b.layout.X && x < b.layout.X+span &&
		y >= b.layout.Y && y < b.layout.Y+span
}

// Reset rebuilds the solved grid and tile set and clears the counter,
// history, queue and any in-flight or scramble state.
func (b *Board) Reset() {
	b.mustLive("Reset")
	b.grid.Solve()
	b.buildTiles()
	b.moves = 0
	b.history = b.history[:0]
	b.queue = b.queue[:0]
	b.inFlight = nil
	b.scrambleLeft = 0
	b.lastDir = -1
}

// UpdatePosition re-anchors the board at (x, y), shifting every tile's
// pixel state by the same delta. Logical grid state and any in-flight slide
// are preserved; used on layout or orientation changes.
func (b *Board) UpdatePosition(x, y float64) {
	b.mustLive("UpdatePosition")
	dx := x - b.layout.X
	dy := y - b.layout.Y
	b.layout.X, b.layout.Y = x, y
	for _, t := range b.tiles {
		t.X += dx
		t.Y += dy
		t.fromX += dx
		t.fromY += dy
		t.targetX += dx
		t.targetY += dy
	}
}

// Destroy halts the in-flight slide (snapping it to its target so the grid
// invariants hold), empties the queue and marks the board dead; mutating
// calls after Destroy panic. Destroying mid-shuffle is a caller error: await
// scramble completion (Shuffling() == false) first.
func (b *Board) Destroy() {
	if b.destroyed {
		return
	}
	if t := b.inFlight; t != nil {
		t.finish()
		b.inFlight = nil
	}
	b.queue = nil
	b.destroyed = true
}

// mustLive panics when the board has been destroyed, which is a caller
// contract violation rather than a puzzle condition.
func (b *Board) mustLive(op string) {
	if b.destroyed {
		panic("puzzle: " + op + " called on a destroyed board")
	}
}
