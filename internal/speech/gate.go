package speech

import (
	"context"
	"sync/atomic"

	"github.com/abhisek/makhraj/internal/logger"
)

// Gate allows one utterance at a time. A request made while another is
// playing is dropped, not queued.
type Gate struct {
	speaker Speaker
	busy    atomic.Bool
	log     *logger.Logger

	// OnDone, if set, is called after each utterance with its result.
	OnDone func(err error)
}

// NewGate wraps a speaker. A nil speaker plays nothing.
func NewGate(s Speaker, log *logger.Logger) *Gate {
	if s == nil {
		s = NopSpeaker{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{speaker: s, log: log}
}

// Play starts speaking text in the background and reports whether it did.
// It returns false without doing anything while a previous utterance is
// still playing.
func (g *Gate) Play(text string) bool {
	if !g.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		err := g.speaker.Speak(context.Background(), text)
		if err != nil {
			g.log.Warn("speech playback failed", "error", err)
		}
		g.busy.Store(false)
		if g.OnDone != nil {
			g.OnDone(err)
		}
	}()
	return true
}

// Busy reports whether an utterance is playing.
func (g *Gate) Busy() bool {
	return g.busy.Load()
}
