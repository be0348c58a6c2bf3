package app

import "time"

// SceneID identifies a scene of the state machine.
type SceneID int

const (
	// SceneNone means "stay on the current scene".
	SceneNone SceneID = iota
	SceneMenu
	ScenePlay
	SceneWon
)

// Transition is a typed scene-change request returned by a scene's Update.
// The zero value requests no change; the payload fields carry what the
// target scene needs (board size for ScenePlay, results for SceneWon).
type Transition struct {
	To      SceneID
	Size    int
	Moves   int
	Elapsed time.Duration
}
