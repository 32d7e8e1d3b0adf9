// Package session holds the state a presentation shell owns around a grid:
// whether the simulation is running, which preset is loaded, how many
// generations have passed and whether the board has settled.
//
// A Session has a single owner. Shells that read input on another goroutine
// must forward Commands to the owner instead of calling Apply concurrently.
package session

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/presets"
	"github.com/sheikhrachel/go-life/utils"
)

// ErrUnknownPreset is returned when a command names a preset that does not exist
var ErrUnknownPreset = errors.New("unknown preset")

// ErrQuit is returned by Apply for the Quit command so shells can stop their loop
var ErrQuit = errors.New("quit requested")

// Status of the simulation as shown to the user
type Status string

const (
	StatusPaused   Status = "Paused"
	StatusActive   Status = "Active"
	StatusStagnant Status = "Stagnant"
	StatusExtinct  Status = "Extinct"
)

// Session is the simulation state owned by a shell
type Session struct {
	config utils.Config
	step   *utils.FixedStep
	stats  *utils.Stats

	grid           *model.Grid
	started        bool
	preset         int // 0-based
	generation     int
	lastRestartGen int
	lastTick       time.Time
	history        []string
}

// New creates a session with the configured start preset loaded
func New(config utils.Config, now time.Time) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[session.New] invalid config")
	}
	s := &Session{
		config:  config,
		step:    utils.NewFixedStep(config.FrameRate),
		stats:   utils.NewStats(now),
		started: config.StartRunning,
	}
	if err := s.LoadPreset(config.StartPreset - 1); err != nil {
		return nil, errors.Wrap(err, "[session.New] failed to load start preset")
	}
	return s, nil
}

// Grid returns the current grid for drawing. Callers must not advance it.
func (s *Session) Grid() *model.Grid { return s.grid }

// Started reports whether generations advance on Tick
func (s *Session) Started() bool { return s.started }

// Preset returns the 0-based index of the loaded preset
func (s *Session) Preset() int { return s.preset }

// PresetName returns the name of the loaded preset
func (s *Session) PresetName() string {
	p, _ := presets.Get(s.preset)
	return p.Name
}

// Generation returns the number of generations advanced since the session began
func (s *Session) Generation() int { return s.generation }

// Stats returns the running performance stats
func (s *Session) Stats() *utils.Stats { return s.stats }

// Config returns the session configuration
func (s *Session) Config() utils.Config { return s.config }

// LoadPreset discards the current grid and seeds a fresh one from the preset
// at the 0-based index. An unknown index leaves the session unchanged.
func (s *Session) LoadPreset(index int) error {
	p, ok := presets.Get(index)
	if !ok {
		return errors.Wrapf(ErrUnknownPreset, "[LoadPreset] index %d", index)
	}
	s.grid = p.Grid()
	s.preset = index
	s.lastRestartGen = s.generation
	s.history = nil
	s.step.Reset()
	return nil
}

// TogglePause starts or stops automatic advancing
func (s *Session) TogglePause() {
	s.started = !s.started
	if s.started {
		s.step.Reset()
	}
}

// StepOnce advances one generation regardless of the started flag
func (s *Session) StepOnce(now time.Time) {
	s.advance(now)
}

// Tick advances one generation when the session is started and a step is due.
// It reports whether the grid changed generation.
func (s *Session) Tick(now time.Time) bool {
	if !s.started || !s.step.ShouldStep(now) {
		return false
	}
	s.advance(now)
	return true
}

func (s *Session) advance(now time.Time) {
	s.updateHistory()
	s.grid.Advance()
	s.generation++

	var frame time.Duration
	if !s.lastTick.IsZero() {
		frame = now.Sub(s.lastTick)
	}
	s.lastTick = now
	s.stats.Update(s.generation, s.grid.CountLivingCells(), frame)
}

// updateHistory records the generation about to be replaced
func (s *Session) updateHistory() {
	s.history = append(s.history, s.grid.GetGridHash())
	if len(s.history) > s.config.HistorySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the grid repeats one of the last three recorded
// generations, which catches still lifes and period 2 and 3 oscillators
func (s *Session) IsStagnant() bool {
	if len(s.history) < 3 {
		return false
	}
	current := s.grid.GetGridHash()
	for _, h := range s.history[len(s.history)-3:] {
		if h == current {
			return true
		}
	}
	return false
}

// Status summarizes the session for display
func (s *Session) Status() Status {
	switch {
	case s.grid.CountLivingCells() == 0:
		return StatusExtinct
	case !s.started:
		return StatusPaused
	case s.IsStagnant():
		return StatusStagnant
	default:
		return StatusActive
	}
}

// StatusLine renders the one-line HUD shared by all shells
func (s *Session) StatusLine() string {
	living := s.grid.CountLivingCells()
	density := float64(living) / float64(s.grid.Dimensions().Area()) * 100
	return fmt.Sprintf("Preset %d: %s | Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.preset+1, s.PresetName(), s.generation-s.lastRestartGen, living, density, s.Status())
}

// ReachedLimit reports whether the configured generation limit has been hit
func (s *Session) ReachedLimit() bool {
	return s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations
}
