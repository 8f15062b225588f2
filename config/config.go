package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of api throughput.
var (
	IntentRate  = rate.Limit(getEnvInt("INTENT_RPS", 30))
	IntentBurst = getEnvInt("INTENT_BURST", 15)
	WatchBuffer = getEnvInt("WATCH_BUFFER", 8)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
