package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
)

// errInternalServer is what clients see for a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500
// problem response, unless the response had already started.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrap(w, r)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("operation", r.Method+" "+r.URL.Path),
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errInternalServer)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
