package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	loggerpkg "github.com/rottedfrog/rollout/logger"
)

// Handler serves the operational endpoints on the optional metrics listener.
type Handler struct {
	logger loggerpkg.Logger
}

// NewHandler builds the HTTP handler set.
func NewHandler(logr loggerpkg.Logger) *Handler {
	if logr == nil {
		logr = loggerpkg.NewNop()
	}
	return &Handler{logger: logr}
}

// RegisterRoutes attaches the HTTP endpoints to the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
