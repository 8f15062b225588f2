package game

import (
	"time"

	"github.com/pkg/errors"
)

// Defaults for board geometry and pacing: a 24x20 board stepping at 150ms,
// accelerating down to a 70ms floor as the score climbs.
const (
	DefaultWidth         = 24
	DefaultHeight        = 20
	DefaultBaseTickDelay = 150 * time.Millisecond
	DefaultMinTickDelay  = 70 * time.Millisecond
	DefaultSpeedStep     = 4 * time.Millisecond
	DefaultInitialLength = 4
)

// speedStepScore is how many points it takes to shave one SpeedStep off the
// tick delay.
const speedStepScore = 4

// Config carries the construction-time parameters of an Engine.
type Config struct {
	// Width and Height are the board dimensions in cells.
	Width  int
	Height int

	// BaseTickDelay is the scheduler wait at score zero. Every
	// speedStepScore points shave one SpeedStep off it, never dropping
	// below MinTickDelay.
	BaseTickDelay time.Duration
	MinTickDelay  time.Duration
	SpeedStep     time.Duration

	// InitialLength is the number of cells in the starting snake.
	InitialLength int
}

// DefaultConfig returns the standard board.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		BaseTickDelay: DefaultBaseTickDelay,
		MinTickDelay:  DefaultMinTickDelay,
		SpeedStep:     DefaultSpeedStep,
		InitialLength: DefaultInitialLength,
	}
}

// Validate reports the first problem that would make the config unplayable.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("game: board %dx%d is empty", c.Width, c.Height)
	}
	if c.InitialLength < 1 {
		return errors.Errorf("game: initial length %d leaves no snake", c.InitialLength)
	}
	if c.InitialLength > c.Width/2+1 {
		return errors.Errorf("game: initial length %d does not fit a board %d wide", c.InitialLength, c.Width)
	}
	if c.BaseTickDelay <= 0 || c.MinTickDelay <= 0 {
		return errors.New("game: tick delays must be positive")
	}
	if c.MinTickDelay > c.BaseTickDelay {
		return errors.Errorf("game: minimum tick delay %s exceeds base %s", c.MinTickDelay, c.BaseTickDelay)
	}
	if c.SpeedStep < 0 {
		return errors.Errorf("game: speed step %s is negative", c.SpeedStep)
	}
	return nil
}
