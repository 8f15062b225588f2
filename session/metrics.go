package session

import "github.com/prometheus/client_golang/prometheus"

var (
	commandSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gridsnake",
			Subsystem: "session",
			Name:      "command_seconds",
			Help:      "Commands serviced by the session loop.",
		},
		[]string{"op"},
	)
	stateChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridsnake",
			Subsystem: "session",
			Name:      "state_changes_total",
			Help:      "Engine state changes by originating op.",
		},
		[]string{"op"},
	)
	scoreGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gridsnake",
			Subsystem: "session",
			Name:      "score",
			Help:      "Current score of the live board.",
		},
	)
)

func instrument(op string) func() {
	t := prometheus.NewTimer(commandSeconds.WithLabelValues(op))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(commandSeconds)
	prometheus.MustRegister(stateChanges)
	prometheus.MustRegister(scoreGauge)
}
