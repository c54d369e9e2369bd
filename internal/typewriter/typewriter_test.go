package typewriter

import (
	"strings"
	"testing"
	"time"
)

func newWriter(t *testing.T, mutate func(*Config)) *Writer {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Texts = []string{"hello", "gopher"}
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := New(cfg, 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestValidation(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := New(cfg, 1); err == nil {
		t.Fatal("empty text list accepted")
	}
	cfg.Texts = []string{"x"}
	cfg.TypeDelay = 0
	if _, err := New(cfg, 1); err == nil {
		t.Fatal("zero type delay accepted")
	}
	cfg = DefaultConfig()
	cfg.Texts = []string{"x"}
	cfg.BlinkInterval = 0
	if _, err := New(cfg, 1); err == nil {
		t.Fatal("zero blink interval with cursor accepted")
	}
}

func TestTypesFirstStringCompletely(t *testing.T) {
	w := newWriter(t, nil)
	if w.Text() != "" {
		t.Fatalf("text before any time passed: %q", w.Text())
	}
	// Per-character jitter never exceeds 1.5x the base delay, so this covers
	// the initial delay plus every character with margin.
	cfg := DefaultConfig()
	budget := cfg.InitialDelay + time.Duration(len("hello")+1)*cfg.TypeDelay*2
	prev := 0
	for elapsed := time.Duration(0); elapsed < budget; elapsed += 10 * time.Millisecond {
		w.Advance(10 * time.Millisecond)
		n := len(w.Text())
		if n < prev && w.Text() != "hello"[:n] {
			t.Fatalf("text shrank mid-typing: %q", w.Text())
		}
		prev = n
		if w.Text() == "hello" {
			return
		}
		if !strings.HasPrefix("hello", w.Text()) {
			t.Fatalf("unexpected partial text %q", w.Text())
		}
	}
	t.Fatalf("first string never completed, stuck at %q", w.Text())
}

func TestDeletesAndMovesToNextString(t *testing.T) {
	w := newWriter(t, nil)
	cfg := DefaultConfig()
	// Enough for: initial delay, typing "hello", pause, deleting it, and
	// typing "gopher", all at worst-case jitter.
	budget := cfg.InitialDelay + cfg.Pause +
		time.Duration(len("hello"))*(cfg.TypeDelay+cfg.DeleteDelay)*2 +
		time.Duration(len("gopher")+1)*cfg.TypeDelay*2
	for elapsed := time.Duration(0); elapsed < budget; elapsed += 5 * time.Millisecond {
		w.Advance(5 * time.Millisecond)
		if w.Text() == "gopher" {
			return
		}
	}
	t.Fatalf("never reached second string, at %q", w.Text())
}

func TestNonLoopStopsOnLastString(t *testing.T) {
	w := newWriter(t, func(c *Config) {
		c.Texts = []string{"done"}
		c.Loop = false
	})
	for i := 0; i < 10000 && !w.Done(); i++ {
		w.Advance(5 * time.Millisecond)
	}
	if !w.Done() || w.Text() != "done" {
		t.Fatalf("writer did not finish cleanly: done=%v text=%q", w.Done(), w.Text())
	}
	w.Advance(time.Second)
	if w.Text() != "done" {
		t.Fatalf("finished text changed to %q", w.Text())
	}
}

func TestCursorBlinks(t *testing.T) {
	w := newWriter(t, func(c *Config) { c.Cursor = "_" })
	if !strings.HasSuffix(w.Line(), "_") {
		t.Fatalf("cursor not visible initially: %q", w.Line())
	}
	w.Advance(DefaultConfig().BlinkInterval)
	if strings.HasSuffix(w.Line(), "_") {
		t.Fatalf("cursor still visible after one blink interval: %q", w.Line())
	}
	w.Advance(DefaultConfig().BlinkInterval)
	if !strings.HasSuffix(w.Line(), "_") {
		t.Fatalf("cursor did not return: %q", w.Line())
	}
}

func TestCursorHidden(t *testing.T) {
	w := newWriter(t, func(c *Config) { c.ShowCursor = false })
	if w.Line() != w.Text() {
		t.Fatalf("hidden cursor still rendered: %q", w.Line())
	}
}

func TestDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Texts = []string{"abc", "defg"}
	a, _ := New(cfg, 42)
	b, _ := New(cfg, 42)
	for i := 0; i < 2000; i++ {
		a.Advance(7 * time.Millisecond)
		b.Advance(7 * time.Millisecond)
		if a.Line() != b.Line() {
			t.Fatalf("writers with equal seeds diverged at step %d: %q vs %q", i, a.Line(), b.Line())
		}
	}
}
