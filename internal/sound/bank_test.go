//go:build ebiten

package sound

import "testing"

func TestSilentBankIsSafe(t *testing.T) {
	// A bank without an audio context is the degraded mode; playback must
	// be a no-op, never a panic.
	b := &Bank{click: synthClick()}
	b.PlayMove()

	b.muted = true
	b.PlayMove()

	var nilBank *Bank
	nilBank.PlayMove()
}

func TestSynthClickIsAlignedPCM(t *testing.T) {
	buf := synthClick()
	if len(buf) == 0 {
		t.Fatalf("empty click buffer")
	}
	// 16-bit stereo frames are 4 bytes wide.
	if len(buf)%4 != 0 {
		t.Fatalf("click buffer length %d not frame-aligned", len(buf))
	}
}
