package utils

import (
	"testing"
	"time"
)

func TestFixedStep(t *testing.T) {
	t0 := time.Unix(1000, 0)
	fs := NewFixedStep(100 * time.Millisecond)

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true}, // due immediately
		{50 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{time.Second, true},
		{time.Second, true}, // one carried-over step after a stall
		{time.Second, false},
	}
	for i, s := range steps {
		if got := fs.ShouldStep(t0.Add(s.at)); got != s.want {
			t.Fatalf("step %d at %s: got %v, want %v", i, s.at, got, s.want)
		}
	}
}

func TestFixedStepReset(t *testing.T) {
	t0 := time.Unix(1000, 0)
	fs := NewFixedStep(time.Second)
	fs.ShouldStep(t0)
	if fs.ShouldStep(t0.Add(time.Millisecond)) {
		t.Fatal("step due too early")
	}
	fs.Reset()
	if !fs.ShouldStep(t0.Add(2 * time.Millisecond)) {
		t.Fatal("step not due after reset")
	}
}

func TestFixedStepDefaultsNonPositive(t *testing.T) {
	if got := NewFixedStep(0).Step(); got != 150*time.Millisecond {
		t.Fatalf("step = %s, want 150ms", got)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats(time.Unix(0, 0))
	s.Update(1, 10, 100*time.Millisecond)
	if s.AveragePopulation != 10 || s.GenerationsPerSecond != 10 {
		t.Fatalf("unexpected stats %+v", s)
	}
	s.Update(2, 20, 0)
	if s.AveragePopulation != 11 || s.TotalGenerations != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if got := s.Runtime(time.Unix(3, 0)); got != 3*time.Second {
		t.Fatalf("runtime = %s", got)
	}
}
