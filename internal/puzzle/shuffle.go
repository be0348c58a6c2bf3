package puzzle

// scrambleBatch is how many scramble moves run per Step before control
// returns to the frame loop, so rendering and input stay serviced during a
// long shuffle.
const scrambleBatch = 10

// blank-move directions: up, down, left, right. reverse[i] is the direction
// that undoes direction i.
var (
	scrambleDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	reverseDir   = [4]int{1, 0, 3, 2}
)

// DefaultShuffleMoves returns the scramble length used for a given board
// size: 80 for 4x4 and 150 for 5x5, scaling linearly with cell count
// elsewhere.
func DefaultShuffleMoves(size int) int {
	switch size {
	case 4:
		return 80
	case 5:
		return 150
	default:
		return size * size * 5
	}
}

// Shuffle begins a scramble of moveCount uniformly random legal blank-moves,
// excluding the direct reverse of each preceding move. A negative moveCount
// selects the size default; zero degrades to a no-op scramble that leaves
// the board solved.
//
// Scrambling bypasses MoveBlock entirely: grid, blank and tile positions
// mutate directly with no animation, sound, queueing or move counting. The
// scramble drains in batches inside Step; once it finishes the move counter
// and history are reset, so the shuffle never counts as player moves. Any
// sequence of legal blank-moves from a solvable state stays solvable, so
// every shuffle outcome is solvable.
func (b *Board) Shuffle(moveCount int) {
	b.mustLive("Shuffle")
	if moveCount < 0 {
		moveCount = DefaultShuffleMoves(b.size)
	}
	// A scramble supersedes whatever the player had pending.
	if t := b.inFlight; t != nil {
		t.finish()
		b.inFlight = nil
	}
	b.queue = b.queue[:0]
	b.lastDir = -1
	b.scrambleLeft = moveCount
	if moveCount == 0 {
		b.finishScramble()
	}
}

// stepScramble advances an active scramble by at most scrambleBatch moves.
func (b *Board) stepScramble() {
	if b.scrambleLeft <= 0 {
		return
	}
	n := b.scrambleLeft
	if n > scrambleBatch {
		n = scrambleBatch
	}
	for i := 0; i < n; i++ {
		b.scrambleMove()
	}
	b.scrambleLeft -= n
	if b.scrambleLeft == 0 {
		b.finishScramble()
	}
}

// scrambleMove slides one uniformly chosen neighbor of the blank into the
// blank, never undoing the previous scramble move.
func (b *Board) scrambleMove() {
	var candidates [4]int
	k := 0
	for d, delta := range scrambleDirs {
		if b.lastDir >= 0 && d == reverseDir[b.lastDir] {
			continue
		}
		if b.grid.InBounds(b.blankRow+delta[0], b.blankCol+delta[1]) {
			candidates[k] = d
			k++
		}
	}
	if k == 0 {
		return
	}
	dir := candidates[b.rng.IntN(k)]
	row := b.blankRow + scrambleDirs[dir][0]
	col := b.blankCol + scrambleDirs[dir][1]

	t := b.tileAt(row, col)
	b.grid.Set(b.blankRow, b.blankCol, t.Value)
	b.grid.Set(row, col, 0)

	x, y := b.layout.CellOrigin(b.blankRow, b.blankCol)
	t.moveTo(x, y, b.blankRow, b.blankCol, false, 0)
	bx, by := b.layout.CellOrigin(row, col)
	b.blank.moveTo(bx, by, row, col, false, 0)

	b.blankRow, b.blankCol = row, col
	b.lastDir = dir
}

// finishScramble clears the player-facing counters so the scramble never
// shows up as moves.
func (b *Board) finishScramble() {
	b.moves = 0
	b.history = b.history[:0]
}

// tileAt returns the settled tile occupying cell (row, col).
func (b *Board) tileAt(row, col int) *Tile {
	for _, t := range b.tiles {
		if t.Row == row && t.Col == col {
			return t
		}
	}
	return nil
}
