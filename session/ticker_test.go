package session

import (
	"context"
	"testing"
	"time"

	"github.com/gridsnake/engine/game"
	"github.com/stretchr/testify/require"
)

// fakeBoard scripts a Board: it serves fixed delays, counts ticks, and
// starts failing after failAfter ticks.
type fakeBoard struct {
	delay     time.Duration
	delays    []time.Duration
	ticks     int
	failAfter int
	err       error
}

func (b *fakeBoard) TickDelay() (time.Duration, error) {
	if b.failAfter == 0 && b.err != nil {
		return 0, b.err
	}
	b.delays = append(b.delays, b.delay)
	return b.delay, nil
}

func (b *fakeBoard) Tick() (bool, error) {
	if b.err != nil && b.ticks >= b.failAfter {
		return false, b.err
	}
	b.ticks++
	return true, nil
}

// instantClock fires immediately and records every requested delay.
type instantClock struct {
	waits []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// stuckClock never fires.
type stuckClock struct{}

func (stuckClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}

func TestTickerReadsDelayBeforeEveryTick(t *testing.T) {
	board := &fakeBoard{delay: 42 * time.Millisecond, failAfter: 5, err: ErrClosed}
	clock := &instantClock{}

	ticker := &Ticker{Board: board, Clock: clock}
	ticker.Run(context.Background())

	require.Equal(t, 5, board.ticks)
	// One delay read per cycle, including the cycle that found the board
	// gone at its tick.
	require.Equal(t, 6, len(board.delays))
	require.Equal(t, 6, len(clock.waits))
	for _, wait := range clock.waits {
		require.Equal(t, 42*time.Millisecond, wait)
	}
}

func TestTickerStopsWhenDelayFails(t *testing.T) {
	board := &fakeBoard{err: ErrClosed}
	ticker := &Ticker{Board: board, Clock: &instantClock{}}
	ticker.Run(context.Background())
	require.Equal(t, 0, board.ticks)
}

func TestTickerStopsOnContextCancel(t *testing.T) {
	board := &fakeBoard{delay: time.Hour, failAfter: 1000, err: ErrClosed}
	ticker := &Ticker{Board: board, Clock: stuckClock{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker survived context cancel")
	}
	require.Equal(t, 0, board.ticks)
}

func TestTickerDrivesSessionToCompletion(t *testing.T) {
	s, err := New(game.DefaultConfig(), WithSeed(1))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	_, err = s.Restart()
	require.NoError(t, err)

	ticker := &Ticker{Board: s, Clock: &instantClock{}}
	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	// With an instant clock the snake charges the right wall.
	deadline := time.Now().Add(5 * time.Second)
	for {
		snap, err := s.Snapshot()
		require.NoError(t, err)
		if snap.Status == game.StatusGameOver {
			break
		}
		require.True(t, time.Now().Before(deadline), "round never finished")
		time.Sleep(time.Millisecond)
	}

	// Stopping the session stops the ticker.
	s.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker survived session close")
	}
}
