package middlewares

import (
	"bookings-gateway/internal/pkg/constvars"
	"bookings-gateway/internal/pkg/utils"
	"errors"
	"net/http"
)

// ErrorHandler turns a panic anywhere below it into the same 500 body every
// other failure produces.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New(constvars.ErrDevUnknownPanic)
				}

				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
