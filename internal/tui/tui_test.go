package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/photonsphere/internal/config"
	"github.com/san-kum/photonsphere/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	// Keep tracing cheap for UI tests: one escaping, one plunging ray.
	cfg.Rays = []config.RayConfig{cfg.Rays[0], cfg.Rays[3]}
	s, err := scene.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(cfg, s)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlaybackControls(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(key(" "))
	m = next.(Model)
	if m.playing {
		t.Error("space should pause")
	}

	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.frame != 0 {
		t.Error("paused model should not advance")
	}

	next, _ = m.Update(key(" "))
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.frame != 1 {
		t.Errorf("frame = %d after one running tick, want 1", m.frame)
	}
}

func TestCameraKeysAndReset(t *testing.T) {
	m := newTestModel(t)
	azim0, zoom0 := m.cam.Azimuth, m.cam.Zoom

	next, _ := m.Update(key("l"))
	m = next.(Model)
	next, _ = m.Update(key("+"))
	m = next.(Model)
	if m.cam.Azimuth == azim0 || m.cam.Zoom == zoom0 {
		t.Fatal("camera keys had no effect")
	}

	next, _ = m.Update(key("r"))
	m = next.(Model)
	if m.cam.Azimuth != azim0 || m.cam.Zoom != zoom0 || m.frame != 0 {
		t.Error("reset should restore the configured view")
	}
}

func TestViewListsRays(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "PHOTON SPHERE") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "escaped") || !strings.Contains(out, "captured") {
		t.Errorf("ray panel should report both outcomes:\n%s", out)
	}
}
