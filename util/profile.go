package util

import (
	"errors"
	"net/http"
	"net/http/pprof"

	loggerpkg "github.com/rottedfrog/rollout/logger"
)

// MaybeStartPprof starts a pprof server when PROFILE_ENABLED is set.
func MaybeStartPprof(logger loggerpkg.Logger) {
	if logger == nil {
		logger = loggerpkg.NewNop()
	}
	if !ProfileEnabled() {
		return
	}
	addr := GetEnv(ProfileAddr, DefaultProfileAddr)
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		logger.Info("pprof server listening", loggerpkg.F("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server error", loggerpkg.F("error", err))
		}
	}()
}

func ProfileEnabled() bool {
	return GetBoolEnv(ProfileEnable)
}
