package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/session"
	log "github.com/sirupsen/logrus"
)

func init() { rand.Seed(time.Now().Unix()) }

// main boots the whole headless stack in one process: a session loop, its
// tick scheduler and the HTTP api. The gridsnake command wraps the same
// pieces with a richer CLI.
func main() {
	var (
		apiAddr string
		width   int
		height  int
		seed    int64
	)
	flag.StringVar(&apiAddr, "api-listen", ":3008", "api listen address")
	flag.IntVar(&width, "width", game.DefaultWidth, "board width in cells")
	flag.IntVar(&height, "height", game.DefaultHeight, "board height in cells")
	flag.Int64Var(&seed, "seed", 0, "random seed, 0 seeds from the clock")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Width = width
	cfg.Height = height

	var (
		sess *session.Session
		err  error
	)
	if seed != 0 {
		sess, err = session.New(cfg, session.WithSeed(seed))
	} else {
		sess, err = session.New(cfg)
	}
	if err != nil {
		log.Fatalf("invalid board: %v", err)
	}

	ctx := context.Background()
	go sess.Run(ctx)

	ticker := &session.Ticker{Board: sess}
	go ticker.Run(ctx)

	log.Infof("api listening on %s", apiAddr)
	srv := api.New(apiAddr, sess)
	if err := srv.WaitForExit(); err != nil {
		log.Fatalf("api failed to serve on (%s): %v", apiAddr, err)
	}
}
