package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/internal/gui"
	"github.com/sheikhrachel/go-life/internal/tui"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	shellTerminal = "terminal"
	shellTUI      = "tui"
	shellGUI      = "gui"
)

// flags are the command-line overrides applied on top of the config file
type flags struct {
	configPath     string
	shell          string
	preset         int
	maxGenerations int
}

func (f *flags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "config.json", "path to a JSON config file")
	fs.StringVar(&f.shell, "shell", shellTerminal, "presentation shell: terminal, tui or gui")
	fs.IntVar(&f.preset, "preset", 0, "starting preset 1-5 (0 keeps the config value)")
	fs.IntVar(&f.maxGenerations, "max-generations", -1, "stop after this many generations (-1 keeps the config value)")
}

// apply overlays flag values that were set on the config
func (f *flags) apply(config *utils.Config) {
	if f.preset != 0 {
		config.StartPreset = f.preset
	}
	if f.maxGenerations >= 0 {
		config.MaxGenerations = f.maxGenerations
	}
}

func main() {
	var f flags
	f.bind(flag.CommandLine)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(f.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading config: %+v", err)
		}
		log.Printf("Using default configuration (%s not found)", f.configPath)
		config = utils.DefaultConfig()
	}
	f.apply(&config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, f.shell, config); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(ctx context.Context, shell string, config utils.Config) error {
	sess, err := newSession(config)
	if err != nil {
		return err
	}

	switch shell {
	case shellTerminal:
		return runTerminal(ctx, sess, model.NewTerminalRenderer(), os.Stdout)
	case shellTUI:
		return tui.Run(ctx, sess)
	case shellGUI:
		return gui.Run(sess)
	default:
		return errors.Errorf("[run] unknown shell %q", shell)
	}
}
