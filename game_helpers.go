package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

// renderer is the drawing surface of the terminal shell
type renderer interface {
	Clear()
	Display(g *model.Grid)
}

// newSession sets up the initial game state
func newSession(config utils.Config) (*session.Session, error) {
	sess, err := session.New(config, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "[newSession] failed to start session")
	}
	return sess, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, sess *session.Session) {
	dims := sess.Grid().Dimensions()
	fmt.Fprintf(out, "Grid: %dx%d | Preset: %s | Initial living cells: %d\n",
		dims.Rows, dims.Cols, sess.PresetName(), sess.Grid().CountLivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, sess *session.Session, now time.Time) {
	stats := sess.Stats()
	fmt.Fprintf(out, "%s | Bounding box: %d cells\n", sess.StatusLine(), sess.Grid().GetBoundingBoxSize())
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime(now).Seconds())
	fmt.Fprintln(out)
}

// runTerminal is the non-interactive shell: it redraws and advances once per
// frame until ctx is done or the generation limit is reached
func runTerminal(ctx context.Context, sess *session.Session, r renderer, out io.Writer) error {
	displayGameInfo(out, sess)

	// no keyboard here, so a paused start would never move
	if !sess.Started() {
		sess.TogglePause()
	}

	ticker := time.NewTicker(sess.Config().FrameRate)
	defer ticker.Stop()

	now := time.Now()
	for {
		r.Clear()
		displayGameStatus(out, sess, now)
		r.Display(sess.Grid())

		if sess.ReachedLimit() {
			fmt.Fprintf(out, "\n🏁 Reached maximum generations limit (%d)\n", sess.Config().MaxGenerations)
			return nil
		}

		select {
		case <-ctx.Done():
			stats := sess.Stats()
			fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
			fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
				sess.Generation(), stats.Runtime(time.Now()).Seconds())
			return nil
		case now = <-ticker.C:
			sess.StepOnce(now)
		}
	}
}
