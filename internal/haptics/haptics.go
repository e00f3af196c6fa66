// Package haptics provides best-effort tactile-style feedback cues. On a
// terminal the closest analogue is the bell; where the bell is unwanted or
// the engine is disabled, every trigger is a silent no-op.
package haptics

import "io"

// Pattern selects a feedback intensity.
type Pattern int

const (
	// Tap is a single light cue (like, send, theme change).
	Tap Pattern = iota
	// Impact is a single stronger cue (join, connect).
	Impact
	// Notify is a double cue used for incoming messages.
	Notify
)

func (p Pattern) bells() int {
	switch p {
	case Notify:
		return 2
	default:
		return 1
	}
}

// Engine emits feedback cues. A nil Engine is safe to use and does nothing.
type Engine struct {
	w       io.Writer
	enabled bool
}

// New returns an Engine writing bell characters to w. Pass enabled=false to
// keep the Engine as a no-op (the caller does not need to branch).
func New(w io.Writer, enabled bool) *Engine {
	return &Engine{w: w, enabled: enabled}
}

// Trigger fires the pattern. Errors are ignored: feedback is fire-and-forget
// and has no return value by contract.
func (e *Engine) Trigger(p Pattern) {
	if e == nil || !e.enabled || e.w == nil {
		return
	}
	for i := 0; i < p.bells(); i++ {
		_, _ = e.w.Write([]byte{'\a'})
	}
}
