package utils

import "time"

// FixedStep decides when the simulation should advance so that generations
// are produced at a steady interval regardless of the render frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep returns a FixedStep that is due on its first call
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the interval. Non-positive values fall back to 150ms.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = 150 * time.Millisecond
	}
	f.step = step
}

// Step returns the current interval
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether a step is due at now. At most one step is
// reported per call; the remainder carries over to the next call.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// don't let a long stall queue up a burst of steps
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Reset discards accumulated time so the next call is due immediately
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}
