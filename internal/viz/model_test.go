package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/chaoswatch/internal/overlay"
	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/sim"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(sim.DefaultConfig(), nil, 10*time.Millisecond, filepath.Join(t.TempDir(), "rec.gif"))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t)
	if m.Frame() != nil {
		t.Fatal("frame rendered before first tick")
	}

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.sim.Frame() != 1 || m.Frame() == nil {
		t.Fatalf("frame = %d after one tick", m.sim.Frame())
	}
	if len(m.xHistory) != 1 {
		t.Errorf("history length %d", len(m.xHistory))
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key(" "), TickMsg(time.Now()), TickMsg(time.Now()))
	if m.sim.Frame() != 0 {
		t.Errorf("paused model advanced to frame %d", m.sim.Frame())
	}

	m = send(m, key("n"))
	if m.sim.Frame() != 1 {
		t.Errorf("step: frame = %d, want 1", m.sim.Frame())
	}

	m = send(m, key(" "), key("n"))
	if m.sim.Frame() != 1 {
		t.Error("n should be ignored while running")
	}
}

func TestModelReset(t *testing.T) {
	m := newTestModel(t)
	m = send(m, TickMsg(time.Now()), TickMsg(time.Now()), key("r"))
	if m.sim.Frame() != 0 || len(m.xHistory) != 0 || m.Frame() != nil {
		t.Error("reset did not restore the initial state")
	}
}

func TestModelHistoryBounded(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < historyCapacity+5; i++ {
		m = send(m, TickMsg(time.Now()))
	}
	if len(m.xHistory) != historyCapacity {
		t.Errorf("history length %d, want %d", len(m.xHistory), historyCapacity)
	}
}

func TestModelRecording(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("g"), TickMsg(time.Now()), TickMsg(time.Now()), TickMsg(time.Now()), key("g"))

	if m.recorder != nil {
		t.Fatal("recording should have stopped")
	}
	if !strings.Contains(m.status, "saved 3 frames") {
		t.Errorf("status = %q", m.status)
	}
	if _, err := os.Stat(m.recordPath); err != nil {
		t.Errorf("recording not written: %v", err)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelOverlayAndView(t *testing.T) {
	face := overlay.Default()
	m, err := NewModel(sim.DefaultConfig(), &face, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	m = send(m, TickMsg(time.Now()), TickMsg(time.Now()), key("t"))

	if m.Frame().Count(raster.Foreground) == 0 {
		t.Error("no ink rendered")
	}
	view := m.View()
	for _, want := range []string{"LORENZ", "Frame", "x(t)", ThemeRetroGreen.Name} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestNewModelInvalidConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.StepsPerFrame = 0
	if _, err := NewModel(cfg, nil, 0, ""); err == nil {
		t.Error("expected error")
	}
}
