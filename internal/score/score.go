// Package score rates a finished puzzle with 0-3 stars from a fixed lookup
// of board size and elapsed time.
package score

import "time"

// MaxStars is the best possible rating.
const MaxStars = 3

// thresholds holds the inclusive upper bound for 3, 2 and 1 stars per board
// size. The 4x4 and 5x5 rows are the designed table; other sizes scale the
// 4x4 row by tile count.
var thresholds = map[int][3]time.Duration{
	4: {60 * time.Second, 180 * time.Second, 300 * time.Second},
	5: {120 * time.Second, 360 * time.Second, 720 * time.Second},
}

// Stars returns the star rating for solving a size*size board in elapsed
// time: 3 down to 0, where a slower solve never outranks a faster one.
func Stars(size int, elapsed time.Duration) int {
	row, ok := thresholds[size]
	if !ok {
		base := thresholds[4]
		scale := float64(size*size-1) / 15.0
		for i, d := range base {
			row[i] = time.Duration(float64(d) * scale)
		}
	}
	for i, limit := range row {
		if elapsed <= limit {
			return MaxStars - i
		}
	}
	return 0
}
