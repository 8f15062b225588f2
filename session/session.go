// Package session owns a live game engine. Every engine access flows
// through one loop goroutine fed by a command channel, so the engine never
// needs a lock: the loop is the single mutation gate for intents, ticks and
// snapshot reads alike, and watchers observe a serialized stream of changes.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gridsnake/engine/game"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ErrClosed is returned for any operation on a session whose loop has
// stopped.
var ErrClosed = errors.New("session: closed")

type opKind int

const (
	opTurn opKind = iota
	opPause
	opRestart
	opTick
	opSnapshot
	opDelay
	opWatch
	opUnwatch
)

func (k opKind) String() string {
	switch k {
	case opTurn:
		return "turn"
	case opPause:
		return "pause"
	case opRestart:
		return "restart"
	case opTick:
		return "tick"
	case opSnapshot:
		return "snapshot"
	case opDelay:
		return "delay"
	case opWatch:
		return "watch"
	case opUnwatch:
		return "unwatch"
	}
	return "unknown"
}

type command struct {
	kind  opKind
	dir   game.Direction
	watch chan Snapshot
	reply chan result
}

type result struct {
	changed bool
	delay   time.Duration
	snap    Snapshot
}

// Session drives one board. Construct with New, start the loop with Run,
// then issue intents and queries from any goroutine.
type Session struct {
	// ID identifies the session in logs and snapshots.
	ID string

	// eng and watchers are owned by the Run goroutine.
	eng      *game.Engine
	watchers map[chan Snapshot]bool
	cmds     chan command

	closed    chan struct{}
	closeOnce sync.Once
}

// Option tweaks session construction.
type Option func(*options)

type options struct {
	seed   int64
	seeded bool
}

// WithSeed pins the engine's random source for reproducible boards.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// New builds a session around a fresh engine. The board starts Ready;
// nothing moves until Run is called and a restart intent arrives.
func New(cfg game.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var eng *game.Engine
	if o.seeded {
		eng = game.NewWithSeed(cfg, o.seed)
	} else {
		eng = game.New(cfg)
	}
	return &Session{
		ID:       uuid.NewV4().String(),
		eng:      eng,
		watchers: map[chan Snapshot]bool{},
		cmds:     make(chan command),
		closed:   make(chan struct{}),
	}, nil
}

// Run serves commands until the context is cancelled or Close is called. It
// is the only goroutine that touches the engine.
func (s *Session) Run(ctx context.Context) {
	log.WithField("session", s.ID).Info("session loop started")
	defer func() {
		s.Close()
		for ch := range s.watchers {
			close(ch)
		}
		s.watchers = nil
		log.WithField("session", s.ID).Info("session loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.closed:
			return
		case cmd := <-s.cmds:
			s.apply(cmd)
		}
	}
}

// Close stops the loop and fails all later calls with ErrClosed. It is safe
// to call from any goroutine, more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

// apply executes one command against the engine and, when the engine
// reports a change, fans the fresh snapshot out to every watcher.
func (s *Session) apply(cmd command) {
	defer instrument(cmd.kind.String())()

	var res result
	switch cmd.kind {
	case opTurn:
		res.changed = s.eng.Turn(cmd.dir)
	case opPause:
		res.changed = s.eng.TogglePause()
	case opRestart:
		res.changed = s.eng.Restart()
	case opTick:
		res.changed = s.eng.Tick()
	case opSnapshot:
		res.snap = s.snapshot()
	case opDelay:
		res.delay = s.eng.TickDelay()
	case opWatch:
		s.watchers[cmd.watch] = true
		push(cmd.watch, s.snapshot())
	case opUnwatch:
		if s.watchers[cmd.watch] {
			delete(s.watchers, cmd.watch)
			close(cmd.watch)
		}
	}

	if res.changed {
		stateChanges.WithLabelValues(cmd.kind.String()).Inc()
		scoreGauge.Set(float64(s.eng.Score()))
		snap := s.snapshot()
		for ch := range s.watchers {
			push(ch, snap)
		}
	}
	cmd.reply <- res
}

// push delivers without blocking. A watcher that cannot keep up loses
// frames rather than stalling the loop.
func push(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
	default:
	}
}

func (s *Session) snapshot() Snapshot {
	width, height := s.eng.BoardDimensions()
	return Snapshot{
		SessionID:       s.ID,
		Status:          s.eng.Status(),
		Score:           s.eng.Score(),
		HighScore:       s.eng.HighScore(),
		Snake:           s.eng.SnakeCells(),
		Food:            s.eng.FoodCell(),
		Width:           width,
		Height:          height,
		TickDelayMillis: s.eng.TickDelay().Nanoseconds() / int64(time.Millisecond),
	}
}

// submit hands a command to the loop and waits for its reply. Either leg
// aborts with ErrClosed once the session stops.
func (s *Session) submit(cmd command) (result, error) {
	cmd.reply = make(chan result, 1)
	select {
	case s.cmds <- cmd:
	case <-s.closed:
		return result{}, ErrClosed
	}
	select {
	case res := <-cmd.reply:
		return res, nil
	case <-s.closed:
		return result{}, ErrClosed
	}
}

// Turn queues a direction change for the next tick.
func (s *Session) Turn(d game.Direction) (bool, error) {
	res, err := s.submit(command{kind: opTurn, dir: d})
	return res.changed, err
}

// TogglePause flips the board between Running and Paused.
func (s *Session) TogglePause() (bool, error) {
	res, err := s.submit(command{kind: opPause})
	return res.changed, err
}

// Restart starts or restarts a round.
func (s *Session) Restart() (bool, error) {
	res, err := s.submit(command{kind: opRestart})
	return res.changed, err
}

// Tick advances the board one step. Schedulers call this; it is not part
// of the player intent surface.
func (s *Session) Tick() (bool, error) {
	res, err := s.submit(command{kind: opTick})
	return res.changed, err
}

// Snapshot returns a read-only view of the board.
func (s *Session) Snapshot() (Snapshot, error) {
	res, err := s.submit(command{kind: opSnapshot})
	return res.snap, err
}

// TickDelay returns the wait the scheduler should observe before the next
// tick, derived from the current score.
func (s *Session) TickDelay() (time.Duration, error) {
	res, err := s.submit(command{kind: opDelay})
	return res.delay, err
}

// Watch registers a snapshot feed. The current snapshot is delivered first,
// then one frame per engine change. The cancel func detaches the feed and
// closes the channel; the channel also closes when the session stops.
func (s *Session) Watch(buffer int) (<-chan Snapshot, func(), error) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)
	if _, err := s.submit(command{kind: opWatch, watch: ch}); err != nil {
		return nil, nil, err
	}
	cancel := func() {
		// On a stopped session the loop already closed the channel.
		s.submit(command{kind: opUnwatch, watch: ch})
	}
	return ch, cancel, nil
}
