package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	loggerpkg "github.com/rottedfrog/rollout/logger"
)

func TestHandlerRoutes(t *testing.T) {
	mux := http.NewServeMux()
	NewHandler(loggerpkg.NewNop()).RegisterRoutes(mux)

	cases := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthz ok",
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "healthz rejects post",
			method:     http.MethodPost,
			path:       "/healthz",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "metrics exposed",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
			wantBody:   "go_goroutines",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.wantStatus)
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("body does not contain %q: %s", tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewHandlerNilLogger(t *testing.T) {
	h := NewHandler(nil)
	if h == nil || h.logger == nil {
		t.Fatal("expected handler with nop logger")
	}
}
