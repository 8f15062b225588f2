package commands

import (
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/gridsnake/engine/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watch and steer a running engine over its api",
	Run: func(*cobra.Command, []string) {
		if err := watchGame(); err != nil {
			log.WithError(err).Fatal("watch failed")
		}
	},
}

// watchGame mirrors a remote board: frames arrive over the api socket,
// intents go back as HTTP posts.
func watchGame() error {
	feed := newBoardFeed()

	u := url.URL{Scheme: "ws", Host: strings.Replace(apiAddr, "http://", "", 1), Path: "/board/socket"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return errors.Wrapf(err, "dialing %s", u.String())
	}

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		defer func() {
			if err := conn.Close(); err != nil {
				log.WithError(err).Warn("closing board socket")
			}
		}()

		for {
			snap := session.Snapshot{}
			if err := conn.ReadJSON(&snap); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.WithError(err).Warn("board socket read")
				}
				return
			}
			feed.put(snap)
		}
	}()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer termbox.Close()

	rb := newRemoteBoard(apiAddr)
	events := setupEventQueue()
	for {
		select {
		case <-gone:
			return nil
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if dispatchKey(rb, ev) {
				return nil
			}
		case <-feed.updates():
			if snap, ok := feed.get(); ok {
				if err := render(snap); err != nil {
					return err
				}
			}
		}
	}
}
