package middleware

import (
	"fmt"
	"net/http"

	"github.com/davidbz/unitecon/internal/observability"
)

// Recover turns a handler panic into a 500 response and an error log line.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(rec)
				}

				observability.FromContext(r.Context()).Error("handler panicked",
					observability.String("method", r.Method),
					observability.String("path", r.URL.Path),
					observability.String("panic", fmt.Sprint(rec)),
				)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
