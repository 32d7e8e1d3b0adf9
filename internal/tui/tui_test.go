package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 40)
	return screen
}

func newSession(t *testing.T, mutate func(*utils.Config)) *session.Session {
	t.Helper()
	cfg := utils.DefaultConfig()
	cfg.FrameRate = 10 * time.Millisecond
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := session.New(cfg, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want session.Command
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), session.LoadPreset(2), true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), session.TogglePause(), true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.Quit(), true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), session.Quit(), true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), session.Command{}, false},
	}
	for _, tt := range tests {
		got, ok := commandForKey(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("commandForKey(%v) = %+v, %v", tt.ev.Name(), got, ok)
		}
	}
}

func TestRunAppliesKeysUntilQuit(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, func(c *utils.Config) { c.StartRunning = false })

	screen.InjectKey(tcell.KeyRune, '4', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := run(ctx, screen, s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("run stopped on timeout, not on quit")
	}
	if s.Preset() != 3 || s.Generation() != 1 {
		t.Fatalf("preset=%d generation=%d, want 3 and 1", s.Preset(), s.Generation())
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, func(c *utils.Config) { c.MaxGenerations = 3 })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := run(ctx, screen, s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !s.ReachedLimit() {
		t.Fatalf("generation = %d, limit not reached", s.Generation())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, screen, s); err != nil {
		t.Fatalf("run: %v", err)
	}
}
