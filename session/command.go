package session

import (
	"time"

	"github.com/pkg/errors"
)

// CommandKind enumerates the discrete actions a shell can request
type CommandKind int

const (
	CommandLoadPreset CommandKind = iota
	CommandTogglePause
	CommandStepOnce
	CommandQuit
)

// Command is one user action translated from a key press
type Command struct {
	Kind   CommandKind
	Preset int // 0-based, only for CommandLoadPreset
}

// LoadPreset builds a command selecting the 0-based preset
func LoadPreset(index int) Command { return Command{Kind: CommandLoadPreset, Preset: index} }

// TogglePause builds a start/stop command
func TogglePause() Command { return Command{Kind: CommandTogglePause} }

// StepOnce builds a single-step command
func StepOnce() Command { return Command{Kind: CommandStepOnce} }

// Quit builds a quit command
func Quit() Command { return Command{Kind: CommandQuit} }

// CommandForRune maps the keys shared by every shell: 1-9 select a preset,
// space toggles, n steps, q quits
func CommandForRune(r rune) (Command, bool) {
	switch {
	case r >= '1' && r <= '9':
		return LoadPreset(int(r - '1')), true
	case r == ' ':
		return TogglePause(), true
	case r == 'n' || r == 'N':
		return StepOnce(), true
	case r == 'q' || r == 'Q':
		return Quit(), true
	}
	return Command{}, false
}

// Apply executes cmd. It returns ErrQuit for CommandQuit and a wrapped
// ErrUnknownPreset for a preset that does not exist.
func (s *Session) Apply(cmd Command, now time.Time) error {
	switch cmd.Kind {
	case CommandLoadPreset:
		return s.LoadPreset(cmd.Preset)
	case CommandTogglePause:
		s.TogglePause()
	case CommandStepOnce:
		s.StepOnce(now)
	case CommandQuit:
		return ErrQuit
	default:
		return errors.Errorf("[Apply] unknown command kind %d", cmd.Kind)
	}
	return nil
}
