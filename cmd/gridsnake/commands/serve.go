package commands

import (
	"context"
	"net/http"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveListen = ":3008"
	promEnable  = true
	promListen  = ":9000"
)

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", serveListen, "api address to listen on")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	addBoardFlags(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serve a headless board over the engine api",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		sess, err := newSession()
		if err != nil {
			log.WithError(err).Fatal("invalid board")
		}
		ctx := context.Background()
		go sess.Run(ctx)

		ticker := &session.Ticker{Board: sess}
		go ticker.Run(ctx)

		srv := api.New(serveListen, sess)
		log.WithFields(log.Fields{
			"listen":  serveListen,
			"session": sess.ID,
		}).Info("gridsnake api serving")
		if err := srv.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", serveListen).
				Fatal("api server failed")
		}
	},
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
