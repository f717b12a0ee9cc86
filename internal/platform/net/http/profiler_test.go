package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"paperwork/internal/platform/config"
	phttp "paperwork/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := phttp.NewServer(config.New()).Router()
		phttp.MountProfiler(r, "/debug", enabled)

		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
		want := http.StatusNotFound
		if enabled {
			want = http.StatusOK
		}
		if rec.Code != want {
			t.Fatalf("enabled=%v: /debug/pprof/ = %d, want %d", enabled, rec.Code, want)
		}
	}
}
