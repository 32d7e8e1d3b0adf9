//go:build ebiten

// Package gui runs a session in an ebiten window.
package gui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
)

const hudHeight = 20

// Game adapts a session to the ebiten.Game interface
type Game struct {
	sess     *session.Session
	cellSize int

	aliveColor color.Color
	deadColor  color.Color
}

// New constructs a Game drawing each cell as a cellSize square
func New(sess *session.Session) *Game {
	return &Game{
		sess:       sess,
		cellSize:   sess.Config().CellSize,
		aliveColor: color.White,
		deadColor:  color.Black,
	}
}

// Update applies this frame's key presses and advances the session when due
func (g *Game) Update() error {
	now := time.Now()
	for _, cmd := range commandsFor(inpututil.IsKeyJustPressed) {
		err := g.sess.Apply(cmd, now)
		switch {
		case errors.Is(err, session.ErrQuit):
			return ebiten.Termination
		case errors.Is(err, session.ErrUnknownPreset):
		case err != nil:
			return err
		}
	}
	g.sess.Tick(now)
	if g.sess.ReachedLimit() {
		return ebiten.Termination
	}
	return nil
}

// Draw fills one rectangle per cell, then the status line
func (g *Game) Draw(screen *ebiten.Image) {
	size := float32(g.cellSize)
	g.sess.Grid().Each(func(p model.Position, state model.CellState) {
		clr := g.deadColor
		if state == model.Alive {
			clr = g.aliveColor
		}
		vector.DrawFilledRect(screen, float32(p.Col)*size, float32(p.Row)*size, size, size, clr, false)
	})
	rows := g.sess.Grid().Dimensions().Rows
	text.Draw(screen, g.sess.StatusLine(), basicfont.Face7x13, 4, rows*g.cellSize+14, color.White)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.windowSize()
	return w, h
}

func (g *Game) windowSize() (int, int) {
	dims := g.sess.Grid().Dimensions()
	w, h := g.sess.Config().WindowSize(dims.Rows, dims.Cols)
	return w, h + hudHeight
}

// Run opens the window and blocks until it is closed or the user quits
func Run(sess *session.Session) error {
	game := New(sess)
	cfg := sess.Config()

	w, h := game.windowSize()
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[gui.Run] game loop failed")
	}
	return nil
}
