//go:build ebiten

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/session"
)

// keyBindings maps just-pressed keys to session commands, checked in order
var keyBindings = []struct {
	key ebiten.Key
	cmd session.Command
}{
	{ebiten.KeyDigit1, session.LoadPreset(0)},
	{ebiten.KeyDigit2, session.LoadPreset(1)},
	{ebiten.KeyDigit3, session.LoadPreset(2)},
	{ebiten.KeyDigit4, session.LoadPreset(3)},
	{ebiten.KeyDigit5, session.LoadPreset(4)},
	{ebiten.KeySpace, session.TogglePause()},
	{ebiten.KeyN, session.StepOnce()},
	{ebiten.KeyQ, session.Quit()},
	{ebiten.KeyEscape, session.Quit()},
}

// commandsFor returns the commands for the keys pressed this frame
func commandsFor(justPressed func(ebiten.Key) bool) []session.Command {
	var cmds []session.Command
	for _, b := range keyBindings {
		if justPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
