package bootstrap

import (
	"github.com/rottedfrog/rollout/internal/metrics"
	loggerpkg "github.com/rottedfrog/rollout/logger"
	"github.com/rottedfrog/rollout/util"
)

// InitObservability wires metrics and optional pprof server.
func InitObservability(logger loggerpkg.Logger) {
	metrics.Init()
	util.MaybeStartPprof(logger)
}
