package game

import (
	"math/rand"
	"time"
)

// Engine is the authoritative state machine for a single board: the snake,
// the food, the score and the lifecycle status. It owns its own random
// source and performs no I/O.
//
// Engine is not safe for concurrent use. Callers that share one across
// goroutines must serialize access; the session package does exactly that.
type Engine struct {
	cfg Config
	rng *rand.Rand

	status Status

	// snake holds the body head first; snake[0] is the head and the last
	// element is the tail.
	snake         []Cell
	direction     Direction
	nextDirection Direction
	food          Cell

	score     uint32
	highScore uint32
}

// New builds a Ready engine with the canonical starting snake, a random food
// cell, and a clock-seeded random source. The config must already be valid.
func New(cfg Config) *Engine {
	return NewWithSeed(cfg, time.Now().UnixNano())
}

// NewWithSeed is New with a pinned random seed, for reproducible boards.
func NewWithSeed(cfg Config, seed int64) *Engine {
	e := &Engine{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(seed)),
		status:        StatusReady,
		snake:         initialSnake(cfg),
		direction:     Right,
		nextDirection: Right,
	}
	e.placeFood()
	return e
}

// initialSnake builds the canonical starting body: a horizontal run of
// cfg.InitialLength cells centered on the board, head at the right end,
// facing Right.
func initialSnake(cfg Config) []Cell {
	startX := cfg.Width / 2
	startY := cfg.Height / 2
	body := make([]Cell, 0, cfg.InitialLength)
	for i := 0; i < cfg.InitialLength; i++ {
		body = append(body, Cell{X: startX - i, Y: startY})
	}
	return body
}

// Turn queues a direction change to take effect on the next tick. Later
// turns within the same tick overwrite earlier ones. The intent is dropped
// while the board is Ready or finished, and a reversal of the direction of
// travel is dropped outright rather than queued: reversing into the neck is
// instant death. A single-cell snake has no neck and may reverse freely.
//
// The reported bool is whether the call changed any state.
func (e *Engine) Turn(d Direction) bool {
	if e.status == StatusReady || e.status == StatusGameOver {
		return false
	}
	if d.IsOpposite(e.direction) && len(e.snake) > 1 {
		return false
	}
	if e.nextDirection == d {
		return false
	}
	e.nextDirection = d
	return true
}

// TogglePause flips Running to Paused and back. Other statuses are left
// alone, so a pause can never revive a finished board.
func (e *Engine) TogglePause() bool {
	switch e.status {
	case StatusRunning:
		e.status = StatusPaused
	case StatusPaused:
		e.status = StatusRunning
	default:
		return false
	}
	return true
}

// Restart begins a fresh round and reports true. From Ready the board is
// already in its canonical start state and play simply begins; from any
// other status the board is rebuilt first. The high score survives.
func (e *Engine) Restart() bool {
	if e.status != StatusReady {
		e.reset()
	}
	e.status = StatusRunning
	return true
}

// reset rebuilds the canonical board: starting snake, score zero, fresh
// food. The high score is preserved for the lifetime of the engine.
func (e *Engine) reset() {
	e.snake = initialSnake(e.cfg)
	e.direction = Right
	e.nextDirection = Right
	e.status = StatusReady
	e.score = 0
	e.placeFood()
}

// Tick advances the simulation one step: commit the queued direction, move
// the head, detect collisions, eat or shuffle forward. Only a Running board
// is advanced; every other status reports no change.
func (e *Engine) Tick() bool {
	if e.status != StatusRunning {
		return false
	}

	e.direction = e.nextDirection
	next := e.snake[0].Offset(e.direction)

	// Collisions are judged against the pre-tick body. The tail cell still
	// counts as occupied even though this very step would vacate it.
	if !Contains(next, e.cfg.Width, e.cfg.Height) || bodyContains(e.snake, next) {
		e.status = StatusGameOver
		return true
	}

	e.snake = append([]Cell{next}, e.snake...)
	if next == e.food {
		e.score++
		if e.score > e.highScore {
			e.highScore = e.score
		}
		e.placeFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}
	return true
}

// TickDelay derives the scheduler wait from the current score: every
// speedStepScore points shave one SpeedStep off the base delay, floored at
// MinTickDelay. It is computed fresh on every call, so a score change shows
// up in the very next wait.
func (e *Engine) TickDelay() time.Duration {
	delay := e.cfg.BaseTickDelay - time.Duration(e.score/speedStepScore)*e.cfg.SpeedStep
	if delay < e.cfg.MinTickDelay {
		delay = e.cfg.MinTickDelay
	}
	return delay
}

// Status returns the board's lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Score returns the current round's score.
func (e *Engine) Score() uint32 { return e.score }

// HighScore returns the best score seen by this engine across rounds.
func (e *Engine) HighScore() uint32 { return e.highScore }

// SnakeCells returns a head-first copy of the body, safe for the caller to
// retain.
func (e *Engine) SnakeCells() []Cell {
	cells := make([]Cell, len(e.snake))
	copy(cells, e.snake)
	return cells
}

// FoodCell returns the current food position.
func (e *Engine) FoodCell() Cell { return e.food }

// BoardDimensions returns the board size in cells.
func (e *Engine) BoardDimensions() (width, height int) {
	return e.cfg.Width, e.cfg.Height
}
