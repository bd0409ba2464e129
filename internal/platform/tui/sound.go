package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-bounce/internal/game"
)

// SoundPlayer receives fire-and-forget sound cues for game events.
type SoundPlayer interface {
	Play(kind game.EventKind)
}

// Audible reports whether an event has a sound cue.
func Audible(kind game.EventKind) bool {
	switch kind {
	case game.EventWallBounce, game.EventPaddleBounce, game.EventMiss:
		return true
	}
	return false
}

// Bell rings the terminal bell on w for every audible event.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w, typically stderr of the terminal
// or the SSH session.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell if kind is audible.
func (b *Bell) Play(kind game.EventKind) {
	if !Audible(kind) || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort, a missed bell is harmless
	b.w.Write([]byte{'\a'})
}

// NopPlayer discards all sound cues.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(game.EventKind) {}
