package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"paperwork/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins defaults to any origin when empty
	CORSOrigins []string
	// Slow marks access log lines at warn level, 0 disables
	Slow time.Duration
	// Timeout cancels request contexts, 0 means 30s
	Timeout time.Duration
}

// CommonStack returns the baseline middleware slice shared by every api scope
func CommonStack(opt StackOptions) []func(http.Handler) http.Handler {
	timeout := opt.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext,

		// safety
		middleware.RecoverJSON,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: opt.Slow}),

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(timeout),
	}
}
