package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// Logging логирует каждый запрос: метод, путь, статус, длительность
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			id := RequestIDFrom(r.Context())
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, duration, id)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, duration, id)
			default:
				log.Info("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, duration, id)
			}
		})
	}
}
