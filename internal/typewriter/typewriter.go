// Package typewriter implements the banner text effect: candidate strings
// typed and erased character by character on randomized delays, with an
// optional blinking cursor. Pure state machine; drawing lives in the ui
// package.
package typewriter

import (
	"errors"
	"math/rand/v2"
	"time"
)

// Config controls the typing rhythm. Delays are per character; each step
// jitters around its base delay so the cadence feels hand-typed.
type Config struct {
	Texts []string

	TypeDelay   time.Duration
	DeleteDelay time.Duration
	// Pause holds a fully typed string before deletion starts.
	Pause time.Duration
	// InitialDelay runs once before the first character.
	InitialDelay time.Duration

	// Loop restarts from the first string after the last one; otherwise the
	// final string stays on screen.
	Loop bool

	ShowCursor    bool
	Cursor        string
	BlinkInterval time.Duration
}

// DefaultConfig matches the stock banner cadence.
func DefaultConfig() Config {
	return Config{
		TypeDelay:     90 * time.Millisecond,
		DeleteDelay:   45 * time.Millisecond,
		Pause:         1500 * time.Millisecond,
		InitialDelay:  400 * time.Millisecond,
		Loop:          true,
		ShowCursor:    true,
		Cursor:        "|",
		BlinkInterval: 500 * time.Millisecond,
	}
}

type phase int

const (
	phaseInitial phase = iota
	phaseTyping
	phasePausing
	phaseDeleting
	phaseDone
)

// Writer steps through the configured strings as time is fed to it.
type Writer struct {
	cfg   Config
	texts [][]rune
	rng   *rand.Rand

	idx   int
	pos   int
	phase phase
	wait  time.Duration

	blinkAcc time.Duration
	blinkOn  bool
}

// New validates cfg and returns a Writer seeded for deterministic jitter.
func New(cfg Config, seed int64) (*Writer, error) {
	if len(cfg.Texts) == 0 {
		return nil, errors.New("typewriter: need at least one text")
	}
	if cfg.TypeDelay <= 0 || cfg.DeleteDelay <= 0 {
		return nil, errors.New("typewriter: typing and deleting delays must be positive")
	}
	if cfg.ShowCursor && cfg.BlinkInterval <= 0 {
		return nil, errors.New("typewriter: blink interval must be positive")
	}
	texts := make([][]rune, len(cfg.Texts))
	for i, s := range cfg.Texts {
		texts[i] = []rune(s)
	}
	return &Writer{
		cfg:     cfg,
		texts:   texts,
		rng:     rand.New(rand.NewPCG(uint64(seed), 1)),
		phase:   phaseInitial,
		wait:    cfg.InitialDelay,
		blinkOn: true,
	}, nil
}

// Advance feeds elapsed time to the writer, applying as many steps as fit.
func (w *Writer) Advance(dt time.Duration) {
	if w.cfg.ShowCursor {
		w.blinkAcc += dt
		for w.blinkAcc >= w.cfg.BlinkInterval {
			w.blinkAcc -= w.cfg.BlinkInterval
			w.blinkOn = !w.blinkOn
		}
	}
	if w.phase == phaseDone {
		return
	}
	w.wait -= dt
	for w.wait <= 0 && w.phase != phaseDone {
		w.step()
	}
}

func (w *Writer) step() {
	switch w.phase {
	case phaseInitial:
		w.phase = phaseTyping
		w.wait += w.jitter(w.cfg.TypeDelay)
	case phaseTyping:
		w.pos++
		if w.pos >= len(w.texts[w.idx]) {
			w.pos = len(w.texts[w.idx])
			if !w.cfg.Loop && w.idx == len(w.texts)-1 {
				w.phase = phaseDone
				return
			}
			w.phase = phasePausing
			w.wait += w.cfg.Pause
			return
		}
		w.wait += w.jitter(w.cfg.TypeDelay)
	case phasePausing:
		w.phase = phaseDeleting
		w.wait += w.jitter(w.cfg.DeleteDelay)
	case phaseDeleting:
		w.pos--
		if w.pos <= 0 {
			w.pos = 0
			w.idx = (w.idx + 1) % len(w.texts)
			w.phase = phaseTyping
		}
		w.wait += w.jitter(w.cfg.DeleteDelay)
	}
}

// jitter spreads a base delay over [base/2, 3*base/2).
func (w *Writer) jitter(base time.Duration) time.Duration {
	return base/2 + time.Duration(w.rng.Int64N(int64(base)))
}

// Text returns the currently revealed characters without the cursor.
func (w *Writer) Text() string {
	return string(w.texts[w.idx][:w.pos])
}

// Line returns the display string, cursor glyph included when visible.
func (w *Writer) Line() string {
	if !w.cfg.ShowCursor || !w.blinkOn {
		return w.Text()
	}
	return w.Text() + w.cfg.Cursor
}

// Done reports whether a non-looping writer has finished its last string.
func (w *Writer) Done() bool { return w.phase == phaseDone }
