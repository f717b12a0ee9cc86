package middleware

import (
	"net/http"

	pnet "paperwork/internal/platform/net"
)

// RequestContext copies the chi request id into the logging context and mirrors it
// in the X-Request-ID response header. Must run after RequestID.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := pnet.RequestID(r.Context())
		if reqID == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), reqID)))
	})
}
