package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MovieBooking/internal/api/handlers"
)

const msgSessionRequired = "требуется авторизация"

// RequireSession пропускает запрос только при действующей сессии
func RequireSession(sessions SessionChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated() {
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
