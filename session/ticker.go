package session

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Board is the slice of a session the ticker drives: the current wait and
// the tick intent. Both report an error once the session is gone.
type Board interface {
	TickDelay() (time.Duration, error)
	Tick() (bool, error)
}

// Clock abstracts the timer so tests can drive the ticker deterministically.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type wallClock struct{}

func (wallClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Ticker repeatedly waits out the board's current tick delay and then ticks
// it. The delay is re-read before every wait, so a score-driven speedup
// takes effect on the very next cycle rather than the one after.
type Ticker struct {
	Board Board
	// Clock defaults to the wall clock when nil.
	Clock Clock
}

// Run drives the board until the context ends or the board goes away. A
// dead board ends the loop quietly.
func (t *Ticker) Run(ctx context.Context) {
	clock := t.Clock
	if clock == nil {
		clock = wallClock{}
	}

	for {
		delay, err := t.Board.TickDelay()
		if err != nil {
			log.WithError(err).Debug("ticker stopping")
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-clock.After(delay):
		}

		if _, err := t.Board.Tick(); err != nil {
			log.WithError(err).Debug("ticker stopping")
			return
		}
	}
}
