package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// NumPresets is the number of selectable starting patterns
const NumPresets = 5

// Config holds the configuration for the game
type Config struct {
	WindowTitle    string        `json:"window_title"`
	CellSize       int           `json:"cell_size"`
	Fullscreen     bool          `json:"fullscreen"`
	FrameRate      time.Duration `json:"frame_rate"`
	StartPreset    int           `json:"start_preset"` // 1-based, as shown to the user
	StartRunning   bool          `json:"start_running"`
	MaxGenerations int           `json:"max_generations"` // 0 means unlimited
	HistorySize    int           `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		WindowTitle:    "Conway's Game of Life",
		CellSize:       20,
		Fullscreen:     false,
		FrameRate:      150 * time.Millisecond,
		StartPreset:    1,
		StartRunning:   true,
		MaxGenerations: 0,
		HistorySize:    5,
	}
}

// LoadConfig loads configuration from JSON file, overlaying it on the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values no shell can run with
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame_rate must be positive, got %s", c.FrameRate)
	case c.StartPreset < 1 || c.StartPreset > NumPresets:
		return errors.Errorf("[Validate] start_preset must be in [1, %d], got %d", NumPresets, c.StartPreset)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.HistorySize < 3:
		return errors.Errorf("[Validate] history_size must be at least 3, got %d", c.HistorySize)
	}
	return nil
}

// WindowSize returns the pixel size of a window showing rows x cols cells
func (c Config) WindowSize(rows, cols int) (width, height int) {
	return cols * c.CellSize, rows * c.CellSize
}
