package commands

import (
	"context"

	"github.com/gridsnake/engine/config"
	"github.com/gridsnake/engine/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	addBoardFlags(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a round in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := playGame(); err != nil {
			log.WithError(err).Fatal("play failed")
		}
	},
}

// playGame runs a full local stack: session loop, tick scheduler and the
// terminal renderer, all in one process.
func playGame() error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	ticker := &session.Ticker{Board: sess}
	go ticker.Run(ctx)

	snaps, cancelWatch, err := sess.Watch(config.WatchBuffer)
	if err != nil {
		return err
	}
	defer cancelWatch()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer termbox.Close()

	events := setupEventQueue()
	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if dispatchKey(sess, ev) {
				return nil
			}
		case snap, ok := <-snaps:
			if !ok {
				return nil
			}
			if err := render(drainLatest(snaps, snap)); err != nil {
				return err
			}
		}
	}
}
