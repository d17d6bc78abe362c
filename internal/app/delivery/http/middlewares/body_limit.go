package middlewares

import (
	"net/http"
)

const bytesPerMegabyte = 1 << 20

// BodyLimit caps inbound bodies at APP_REQUEST_BODY_LIMIT_IN_MEGABYTE. A body
// over the cap fails to decode and is reported like any other bad payload.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * bytesPerMegabyte
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
