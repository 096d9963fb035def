package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
)

// Timeout puts a deadline of d on the request context. A handler that
// returns after the deadline without writing gets a 504 problem response.
// Sync work a request started keeps running; only the wait is cut short.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if ww.Status() == 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				dto.WriteErrorResponse(ww, r, fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
			}
		})
	}
}
