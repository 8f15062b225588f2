package commands

import (
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
)

var (
	boardWidth  = game.DefaultWidth
	boardHeight = game.DefaultHeight
	baseTick    = game.DefaultBaseTickDelay
	minTick     = game.DefaultMinTickDelay
	speedStep   = game.DefaultSpeedStep
	boardSeed   int64
)

func addBoardFlags(c *cobra.Command) {
	c.Flags().IntVar(&boardWidth, "width", boardWidth, "board width in cells")
	c.Flags().IntVar(&boardHeight, "height", boardHeight, "board height in cells")
	c.Flags().DurationVar(&baseTick, "base-tick", baseTick, "tick delay at score zero")
	c.Flags().DurationVar(&minTick, "min-tick", minTick, "tick delay floor")
	c.Flags().DurationVar(&speedStep, "speed-step", speedStep, "delay shaved off per four points")
	c.Flags().Int64Var(&boardSeed, "seed", 0, "random seed, 0 seeds from the clock")
}

func newSession() (*session.Session, error) {
	cfg := game.DefaultConfig()
	cfg.Width = boardWidth
	cfg.Height = boardHeight
	cfg.BaseTickDelay = baseTick
	cfg.MinTickDelay = minTick
	cfg.SpeedStep = speedStep

	if boardSeed != 0 {
		return session.New(cfg, session.WithSeed(boardSeed))
	}
	return session.New(cfg)
}

// board is the intent surface shared by local sessions and the remote api
// client, so one key handler serves both play and watch.
type board interface {
	Turn(game.Direction) (bool, error)
	TogglePause() (bool, error)
	Restart() (bool, error)
}

// dispatchKey maps a key event onto a board intent. It reports true when the
// player asked to quit or the board is gone.
func dispatchKey(b board, ev termbox.Event) bool {
	var err error
	switch {
	case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC:
		return true
	case ev.Key == termbox.KeyArrowUp || ev.Ch == 'w' || ev.Ch == 'W':
		_, err = b.Turn(game.Up)
	case ev.Key == termbox.KeyArrowDown || ev.Ch == 's' || ev.Ch == 'S':
		_, err = b.Turn(game.Down)
	case ev.Key == termbox.KeyArrowLeft || ev.Ch == 'a' || ev.Ch == 'A':
		_, err = b.Turn(game.Left)
	case ev.Key == termbox.KeyArrowRight || ev.Ch == 'd' || ev.Ch == 'D':
		_, err = b.Turn(game.Right)
	case ev.Key == termbox.KeySpace:
		_, err = b.TogglePause()
	case ev.Key == termbox.KeyEnter:
		_, err = b.Restart()
	}
	return err != nil
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

// drainLatest empties the feed and keeps only the newest snapshot, so a slow
// terminal paints the current frame instead of replaying a backlog.
func drainLatest(snaps <-chan session.Snapshot, snap session.Snapshot) session.Snapshot {
	for {
		select {
		case next, ok := <-snaps:
			if !ok {
				return snap
			}
			snap = next
		default:
			return snap
		}
	}
}
