//go:build ebiten

package sound

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// Bank owns the audio context and the synthesized effect buffers. It stands
// in for an asset pipeline: the move click is generated at startup, so there
// is nothing to load and nothing to fail. A muted or nil Bank is silent,
// which is the degraded mode puzzle logic never needs to know about.
type Bank struct {
	ctx   *audio.Context
	click []byte
	muted bool
}

// NewBank creates the process audio context and synthesizes the effects.
// When the audio context cannot be created the failure is logged and the
// bank stays silent; puzzle logic never sees the difference.
func NewBank(muted bool) *Bank {
	b := &Bank{click: synthClick(), muted: muted}
	b.ctx = newContext()
	return b
}

func newContext() (ctx *audio.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sound: audio unavailable, continuing silent: %v", r)
			ctx = nil
		}
	}()
	return audio.NewContext(sampleRate)
}

// SetMuted toggles playback.
func (b *Bank) SetMuted(muted bool) { b.muted = muted }

// PlayMove plays the tile-slide click, fire and forget. Safe on a nil Bank.
func (b *Bank) PlayMove() {
	if b == nil || b.muted || b.ctx == nil {
		return
	}
	p := b.ctx.NewPlayerFromBytes(b.click)
	p.Play()
}

// synthClick renders a short decaying sine as 16-bit little-endian stereo
// PCM, the raw format NewPlayerFromBytes expects.
func synthClick() []byte {
	const (
		freq     = 860.0
		duration = 0.06
	)
	n := int(duration * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * env * 0.4 * math.MaxInt16)
		buf[i*4+0] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}
