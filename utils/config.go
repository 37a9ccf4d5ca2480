package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/model"
)

// Config holds the configuration for the game
type Config struct {
	FrameDelay     model.FrameDelay `json:"frame_delay"`
	MaxGenerations int              `json:"max_generations"`
	Headless       bool             `json:"headless"`
	FarewellHold   time.Duration    `json:"farewell_hold"`
}

// DefaultConfig returns the settings the game runs with when no file is given
func DefaultConfig() Config {
	return Config{
		FrameDelay:     model.DefaultFrameDelay,
		MaxGenerations: 0, // unlimited
		Headless:       false,
		FarewellHold:   2 * time.Second,
	}
}

// LoadConfig loads configuration from JSON file over the defaults
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.FrameDelay < model.MinFrameDelay || c.FrameDelay > model.MaxFrameDelay {
		return errors.Errorf("frame_delay %d outside [%d, %d]", c.FrameDelay, model.MinFrameDelay, model.MaxFrameDelay)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations %d is negative", c.MaxGenerations)
	}
	if c.FarewellHold < 0 {
		return errors.Errorf("farewell_hold %v is negative", c.FarewellHold)
	}
	return nil
}
