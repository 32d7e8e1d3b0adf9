// Package tui runs a session in an interactive terminal using tcell.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
)

const helpLine = "1-5 preset | space start/stop | n step | q quit"

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// commandForKey translates a tcell key event into a session command
func commandForKey(ev *tcell.EventKey) (session.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Quit(), true
	case tcell.KeyRune:
		return session.CommandForRune(ev.Rune())
	}
	return session.Command{}, false
}

// Run drives s on a fresh tcell screen until the user quits, ctx is done or
// the session reaches its generation limit
func Run(ctx context.Context, s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[tui.Run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[tui.Run] failed to init screen")
	}
	return run(ctx, screen, s)
}

// run owns s on the frame goroutine; the input goroutine only forwards commands
func run(ctx context.Context, screen tcell.Screen, s *session.Session) error {
	done := make(chan struct{})
	defer screen.Fini()
	defer close(done)
	screen.SetStyle(textStyle)
	screen.Clear()

	eg, ctx := errgroup.WithContext(ctx)
	commands := make(chan session.Command)

	// PollEvent blocks until the screen is finalized, so it runs outside the group
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					cmd, ok := commandForKey(ev)
					if !ok {
						continue
					}
					select {
					case commands <- cmd:
					case <-ctx.Done():
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			}
		}
	})

	eg.Go(func() error {
		ticker := time.NewTicker(frameInterval(s))
		defer ticker.Stop()
		draw(screen, s)
		for {
			select {
			case <-ctx.Done():
				return nil
			case cmd := <-commands:
				err := s.Apply(cmd, time.Now())
				switch {
				case errors.Is(err, session.ErrQuit):
					return session.ErrQuit
				case errors.Is(err, session.ErrUnknownPreset):
					// keys without a preset behind them are ignored
				case err != nil:
					return err
				}
			case now := <-ticker.C:
				s.Tick(now)
				if s.ReachedLimit() {
					// stops the input goroutine too
					return session.ErrQuit
				}
			}
			draw(screen, s)
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, session.ErrQuit) {
		return errors.Wrap(err, "[tui.Run] session loop failed")
	}
	return nil
}

// frameInterval redraws at least as often as the session advances
func frameInterval(s *session.Session) time.Duration {
	return min(s.Config().FrameRate, 50*time.Millisecond)
}

func draw(screen tcell.Screen, s *session.Session) {
	screen.Clear()
	s.Grid().Each(func(p model.Position, state model.CellState) {
		style := deadStyle
		if state == model.Alive {
			style = aliveStyle
		}
		screen.SetContent(p.Col*2, p.Row, ' ', nil, style)
		screen.SetContent(p.Col*2+1, p.Row, ' ', nil, style)
	})
	rows := s.Grid().Dimensions().Rows
	drawText(screen, 0, rows+1, s.StatusLine())
	drawText(screen, 0, rows+2, helpLine)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
