package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/session"
	"github.com/verte-zerg/recite/internal/store"
)

func newTestModel(reference string) *Model {
	cfg := model.Config{Lang: "en", IgnoreCase: true}
	sess := session.New(reference, model.Options{IgnoreCase: true})
	return NewModel(cfg, nil, sess)
}

func TestRenderStatsFormats(t *testing.T) {
	m := newTestModel("one two three")
	m.sess.Start()
	m.sess.SetAttempt("one two")
	gen := m.sess.Generation()
	for i := 0; i < 90; i++ {
		m.sess.Tick(gen)
	}
	out := m.renderStats()
	for _, want := range []string{"Accuracy 67%", "Words 2/3", "WPM 1", "Time 01:30"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats missing %q: %s", want, out)
		}
	}
}

func TestRenderOptionsReflectsToggles(t *testing.T) {
	m := newTestModel("text")
	out := m.renderOptions()
	if !strings.Contains(out, "ignore case: on") {
		t.Fatalf("expected ignore case on: %s", out)
	}
	if !strings.Contains(out, "ignore punctuation: off") {
		t.Fatalf("expected ignore punctuation off: %s", out)
	}
	m.togglePunct()
	if !strings.Contains(m.renderOptions(), "ignore punctuation: on") {
		t.Fatalf("expected ignore punctuation on after toggle")
	}
}

func TestCycleLangWraps(t *testing.T) {
	m := newTestModel("text")
	seen := map[string]bool{m.cfg.Lang: true}
	start := m.cfg.Lang
	for i := 0; i < 2; i++ {
		m.cycleLang()
		seen[m.cfg.Lang] = true
	}
	m.cycleLang()
	if m.cfg.Lang != start {
		t.Fatalf("expected cycle back to %q, got %q", start, m.cfg.Lang)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct languages, saw %v", seen)
	}
}

func TestHandleRevealFreezesTimer(t *testing.T) {
	m := newTestModel("alpha beta")
	m.handleStart()
	gen := m.sess.Generation()
	m.sess.Tick(gen)
	m.sess.Tick(gen)
	m.handleReveal()
	if m.sess.State() != session.StateEditing {
		t.Fatalf("expected editing after reveal")
	}
	if m.sess.ElapsedSeconds() != 2 {
		t.Fatalf("expected elapsed 2, got %d", m.sess.ElapsedSeconds())
	}
	if m.sess.Tick(gen) {
		t.Fatalf("expected stale tick to be dropped after reveal")
	}
}

func TestHandleResetClearsSession(t *testing.T) {
	m := newTestModel("alpha beta")
	m.handleStart()
	m.sess.SetAttempt("alpha")
	m.handleReset()
	if m.sess.Reference() != "" || m.sess.Attempt() != "" || m.sess.ElapsedSeconds() != 0 {
		t.Fatalf("expected cleared session, got %q %q %d",
			m.sess.Reference(), m.sess.Attempt(), m.sess.ElapsedSeconds())
	}
	if m.refInput.Value() != "" || m.attInput.Value() != "" {
		t.Fatalf("expected cleared editors")
	}
}

func TestTogglesPersistToStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "recite.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	})

	cfg := model.Config{Lang: "en"}
	sess := session.New("text", model.Options{})
	m := NewModel(cfg, st, sess)

	m.toggleCase()
	m.togglePunct()
	m.toggleMask()

	ctx := context.Background()
	for _, key := range []string{store.KeyIgnoreCase, store.KeyIgnorePunct, store.KeyMaskWords} {
		value, ok, err := st.GetValue(ctx, key)
		if err != nil {
			t.Fatalf("failed to read %s: %v", key, err)
		}
		if !ok || value != "true" {
			t.Fatalf("expected %s stored as true, got %q (ok=%v)", key, value, ok)
		}
	}
}

func TestTogglesIgnoredWhilePracticing(t *testing.T) {
	m := newTestModel("alpha beta")
	m.handleStart()
	lang := m.cfg.Lang
	opts := m.sess.Options()
	mask := m.cfg.MaskWords

	for _, keyType := range []tea.KeyType{tea.KeyCtrlT, tea.KeyCtrlP, tea.KeyCtrlO, tea.KeyCtrlL} {
		m.Update(tea.KeyMsg{Type: keyType})
	}
	if m.sess.Options() != opts || m.cfg.MaskWords != mask || m.cfg.Lang != lang {
		t.Fatalf("expected options unchanged while practicing")
	}

	m.handleReveal()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.sess.Options().IgnoreCase == opts.IgnoreCase {
		t.Fatalf("expected ignore case to toggle after reveal")
	}
}

func TestQuitKeyBinding(t *testing.T) {
	m := newTestModel("text")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatalf("expected esc not to quit")
		}
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected ctrl+c to produce a command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestWPMUsesElapsedFloorOnStart(t *testing.T) {
	m := newTestModel("a b c d")
	m.handleStart()
	m.sess.SetAttempt("a b")
	out := m.renderStats()
	// With zero elapsed seconds the denominator floors at one second.
	if !strings.Contains(out, "WPM 120") {
		t.Fatalf("expected WPM 120 during first second: %s", out)
	}
}
