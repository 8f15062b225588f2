package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testEngine returns a reproducible default board with the food parked in a
// corner the snake will not reach unless a test steers it there.
func testEngine(t *testing.T) *Engine {
	e := NewWithSeed(DefaultConfig(), 1)
	e.food = Cell{X: 0, Y: 0}
	return e
}

func TestNewWithSeedInitialState(t *testing.T) {
	e := NewWithSeed(DefaultConfig(), 1)

	require.Equal(t, StatusReady, e.Status())
	require.Equal(t, uint32(0), e.Score())
	require.Equal(t, uint32(0), e.HighScore())
	require.Equal(t, DefaultBaseTickDelay, e.TickDelay())

	require.Equal(t, []Cell{
		{X: 12, Y: 10},
		{X: 11, Y: 10},
		{X: 10, Y: 10},
		{X: 9, Y: 10},
	}, e.SnakeCells())

	w, h := e.BoardDimensions()
	require.Equal(t, 24, w)
	require.Equal(t, 20, h)

	require.True(t, Contains(e.FoodCell(), w, h))
	require.False(t, bodyContains(e.snake, e.FoodCell()))
}

func TestTickMovesSnakeForward(t *testing.T) {
	e := testEngine(t)
	e.status = StatusRunning
	e.snake = []Cell{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}

	require.True(t, e.Tick())
	require.Equal(t, []Cell{
		{X: 12, Y: 10},
		{X: 11, Y: 10},
		{X: 10, Y: 10},
		{X: 9, Y: 10},
	}, e.SnakeCells())
	require.Equal(t, StatusRunning, e.Status())
	require.Equal(t, uint32(0), e.Score())
}

func TestTickCommitsQueuedDirection(t *testing.T) {
	e := testEngine(t)
	e.Restart()

	require.True(t, e.Turn(Up))
	require.True(t, e.Tick())
	require.Equal(t, []Cell{
		{X: 12, Y: 9},
		{X: 12, Y: 10},
		{X: 11, Y: 10},
		{X: 10, Y: 10},
	}, e.SnakeCells())
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	for _, status := range []Status{StatusReady, StatusPaused, StatusGameOver} {
		e := testEngine(t)
		e.status = status
		before := e.SnakeCells()

		require.False(t, e.Tick(), "status %s", status)
		require.Equal(t, before, e.SnakeCells())
		require.Equal(t, status, e.Status())
		require.Equal(t, uint32(0), e.Score())
	}
}

func TestWallCollisionEndsRound(t *testing.T) {
	tests := []struct {
		name      string
		body      []Cell
		direction Direction
	}{
		{"right wall", []Cell{{X: 23, Y: 10}, {X: 22, Y: 10}}, Right},
		{"left wall", []Cell{{X: 0, Y: 10}, {X: 1, Y: 10}}, Left},
		{"top wall", []Cell{{X: 5, Y: 0}, {X: 5, Y: 1}}, Up},
		{"bottom wall", []Cell{{X: 5, Y: 19}, {X: 5, Y: 18}}, Down},
	}
	for _, test := range tests {
		e := testEngine(t)
		e.status = StatusRunning
		e.snake = test.body
		e.direction = test.direction
		e.nextDirection = test.direction

		require.True(t, e.Tick(), test.name)
		require.Equal(t, StatusGameOver, e.Status(), test.name)
		require.Equal(t, test.body, e.SnakeCells(), test.name)
		require.Equal(t, uint32(0), e.Score(), test.name)
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	e := testEngine(t)
	e.status = StatusRunning
	// Head at (5,5) traveling Left, body hooked below it.
	e.snake = []Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	e.direction = Left
	e.nextDirection = Down

	require.True(t, e.Tick())
	require.Equal(t, StatusGameOver, e.Status())
	require.Len(t, e.SnakeCells(), 5)
}

func TestTailCellCountsAsOccupied(t *testing.T) {
	e := testEngine(t)
	e.status = StatusRunning
	// A closed square: the next head cell is the tail, which this very
	// tick would vacate. The round still ends.
	e.snake = []Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	e.direction = Left
	e.nextDirection = Down

	require.True(t, e.Tick())
	require.Equal(t, StatusGameOver, e.Status())
	require.Equal(t, []Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}, e.SnakeCells())
}

func TestEatingGrowsScoresAndRelocatesFood(t *testing.T) {
	e := NewWithSeed(DefaultConfig(), 42)
	e.Restart()
	e.food = Cell{X: 13, Y: 10}

	require.True(t, e.Tick())
	require.Equal(t, uint32(1), e.Score())
	require.Equal(t, uint32(1), e.HighScore())
	require.Equal(t, []Cell{
		{X: 13, Y: 10},
		{X: 12, Y: 10},
		{X: 11, Y: 10},
		{X: 10, Y: 10},
		{X: 9, Y: 10},
	}, e.SnakeCells())

	require.NotEqual(t, Cell{X: 13, Y: 10}, e.FoodCell())
	require.True(t, Contains(e.FoodCell(), 24, 20))
	require.False(t, bodyContains(e.snake, e.FoodCell()))
}

func TestHighScoreTracksBestRound(t *testing.T) {
	e := testEngine(t)
	e.Restart()
	e.score = 3
	e.highScore = 10
	e.food = Cell{X: 13, Y: 10}

	require.True(t, e.Tick())
	require.Equal(t, uint32(4), e.Score())
	require.Equal(t, uint32(10), e.HighScore())

	e = testEngine(t)
	e.Restart()
	e.score = 3
	e.highScore = 3
	e.food = Cell{X: 13, Y: 10}

	require.True(t, e.Tick())
	require.Equal(t, uint32(4), e.Score())
	require.Equal(t, uint32(4), e.HighScore())
}

func TestTickDelayScalesWithScore(t *testing.T) {
	tests := []struct {
		score uint32
		delay time.Duration
	}{
		{0, 150 * time.Millisecond},
		{3, 150 * time.Millisecond},
		{4, 146 * time.Millisecond},
		{7, 146 * time.Millisecond},
		{8, 142 * time.Millisecond},
		{40, 110 * time.Millisecond},
		{100, 70 * time.Millisecond},
		{400, 70 * time.Millisecond},
	}
	for _, test := range tests {
		e := NewWithSeed(DefaultConfig(), 1)
		e.score = test.score
		require.Equal(t, test.delay, e.TickDelay(), "score %d", test.score)
	}
}

func TestTickDelayClampsToMinimum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseTickDelay = 100 * time.Millisecond
	cfg.MinTickDelay = 90 * time.Millisecond
	cfg.SpeedStep = 10 * time.Millisecond

	e := NewWithSeed(cfg, 1)
	e.score = 4
	require.Equal(t, 90*time.Millisecond, e.TickDelay())
	e.score = 8
	require.Equal(t, 90*time.Millisecond, e.TickDelay())
}

func TestTurnIgnoredWhileReadyAndGameOver(t *testing.T) {
	e := testEngine(t)
	require.False(t, e.Turn(Up))

	e.status = StatusGameOver
	require.False(t, e.Turn(Up))
}

func TestTurnRejectsReversal(t *testing.T) {
	e := testEngine(t)
	e.Restart()

	require.False(t, e.Turn(Left))
	require.True(t, e.Tick())
	require.Equal(t, Cell{X: 13, Y: 10}, e.SnakeCells()[0])
}

func TestTurnReversalGuardUsesTravelDirection(t *testing.T) {
	e := testEngine(t)
	e.Restart()

	// Two turns within one tick: the second is judged against the
	// direction of travel (Right), not against the queued Up.
	require.True(t, e.Turn(Up))
	require.True(t, e.Turn(Down))
	require.True(t, e.Tick())
	require.Equal(t, Cell{X: 12, Y: 11}, e.SnakeCells()[0])

	// Now traveling Down, an Up turn is a reversal.
	require.False(t, e.Turn(Up))
}

func TestTurnSameDirectionChangesNothing(t *testing.T) {
	e := testEngine(t)
	e.Restart()
	require.False(t, e.Turn(Right))
}

func TestSingleCellSnakeMayReverse(t *testing.T) {
	e := testEngine(t)
	e.status = StatusRunning
	e.snake = []Cell{{X: 5, Y: 5}}

	require.True(t, e.Turn(Left))
	require.True(t, e.Tick())
	require.Equal(t, []Cell{{X: 4, Y: 5}}, e.SnakeCells())
}

func TestTogglePauseOnlyFlipsActiveRounds(t *testing.T) {
	e := testEngine(t)
	require.False(t, e.TogglePause())
	require.Equal(t, StatusReady, e.Status())

	e.Restart()
	require.True(t, e.TogglePause())
	require.Equal(t, StatusPaused, e.Status())
	require.True(t, e.TogglePause())
	require.Equal(t, StatusRunning, e.Status())

	e.status = StatusGameOver
	require.False(t, e.TogglePause())
	require.Equal(t, StatusGameOver, e.Status())
}

func TestTurnWhilePausedIsBuffered(t *testing.T) {
	e := testEngine(t)
	e.Restart()
	require.True(t, e.TogglePause())

	require.True(t, e.Turn(Up))
	require.False(t, e.Tick())

	require.True(t, e.TogglePause())
	require.True(t, e.Tick())
	require.Equal(t, Cell{X: 12, Y: 9}, e.SnakeCells()[0])
}

func TestRestartFromReadyKeepsBoard(t *testing.T) {
	e := NewWithSeed(DefaultConfig(), 7)
	food := e.FoodCell()
	body := e.SnakeCells()

	require.True(t, e.Restart())
	require.Equal(t, StatusRunning, e.Status())
	require.Equal(t, food, e.FoodCell())
	require.Equal(t, body, e.SnakeCells())
	require.Equal(t, uint32(0), e.Score())
}

func TestRestartRebuildsFinishedBoard(t *testing.T) {
	e := NewWithSeed(DefaultConfig(), 7)
	e.status = StatusGameOver
	e.snake = []Cell{{X: 1, Y: 1}}
	e.score = 7
	e.highScore = 9

	require.True(t, e.Restart())
	require.Equal(t, StatusRunning, e.Status())
	require.Equal(t, uint32(0), e.Score())
	require.Equal(t, uint32(9), e.HighScore())
	require.Equal(t, []Cell{
		{X: 12, Y: 10},
		{X: 11, Y: 10},
		{X: 10, Y: 10},
		{X: 9, Y: 10},
	}, e.SnakeCells())
	require.False(t, bodyContains(e.snake, e.FoodCell()))
}

func TestRestartMidRoundRebuilds(t *testing.T) {
	e := testEngine(t)
	e.Restart()
	for i := 0; i < 3; i++ {
		require.True(t, e.Tick())
	}
	require.Equal(t, Cell{X: 15, Y: 10}, e.SnakeCells()[0])

	require.True(t, e.Restart())
	require.Equal(t, StatusRunning, e.Status())
	require.Equal(t, Cell{X: 12, Y: 10}, e.SnakeCells()[0])

	// A paused round restarts the same way.
	require.True(t, e.Tick())
	require.True(t, e.TogglePause())
	require.True(t, e.Restart())
	require.Equal(t, StatusRunning, e.Status())
	require.Equal(t, Cell{X: 12, Y: 10}, e.SnakeCells()[0])
}

func TestSnakeCellsReturnsACopy(t *testing.T) {
	e := NewWithSeed(DefaultConfig(), 1)
	cells := e.SnakeCells()
	cells[0].X = 99
	require.Equal(t, Cell{X: 12, Y: 10}, e.SnakeCells()[0])
}
