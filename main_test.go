package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type recordingRenderer struct {
	clears   int
	displays int
}

func (r *recordingRenderer) Clear()              { r.clears++ }
func (r *recordingRenderer) Display(*model.Grid) { r.displays++ }

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.FrameRate = time.Millisecond
	return cfg
}

func TestRunTerminalStopsAtLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxGenerations = 3
	cfg.StartRunning = false
	sess, err := newSession(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &recordingRenderer{}
	if err = runTerminal(context.Background(), sess, r, &out); err != nil {
		t.Fatal(err)
	}

	if sess.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", sess.Generation())
	}
	if r.displays != 4 || r.clears != 4 {
		t.Fatalf("rendered %d frames (%d clears), want 4", r.displays, r.clears)
	}
	if !strings.Contains(out.String(), "Reached maximum generations limit (3)") {
		t.Fatalf("missing limit message in %q", out.String())
	}
}

func TestRunTerminalStopsOnCancel(t *testing.T) {
	sess, err := newSession(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err = runTerminal(ctx, sess, &recordingRenderer{}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Shutting down gracefully") {
		t.Fatalf("missing shutdown message in %q", out.String())
	}
}

func TestRunRejectsUnknownShell(t *testing.T) {
	if err := run(context.Background(), "carrier-pigeon", testConfig()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFlagsApply(t *testing.T) {
	var f flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.bind(fs)
	if err := fs.Parse([]string{"-preset", "4", "-max-generations", "10"}); err != nil {
		t.Fatal(err)
	}

	cfg := utils.DefaultConfig()
	f.apply(&cfg)
	if cfg.StartPreset != 4 || cfg.MaxGenerations != 10 {
		t.Fatalf("flags not applied: %+v", cfg)
	}

	var unset flags
	unset.bind(flag.NewFlagSet("test", flag.ContinueOnError))
	cfg = utils.DefaultConfig()
	unset.apply(&cfg)
	if cfg != utils.DefaultConfig() {
		t.Fatalf("unset flags changed config: %+v", cfg)
	}
}
