package middleware

import (
	"net/http"
	"time"

	"github.com/solarfin/api-inadimplencia/internal/logger"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger registra método, rota, status e duração de cada requisição.
func RequestLogger(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("requisição atendida",
				"metodo", r.Method,
				"rota", r.URL.Path,
				"status", sw.status,
				"duracao", time.Since(inicio).String(),
			)
		})
	}
}
