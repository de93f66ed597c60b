package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// пакетный логгер мидлвари; до SetLogger — no-op, чтобы тесты и ранние
// запросы не паниковали.
var logger = zap.NewNop().Sugar()

// SetLogger передаёт мидлвари общий SugaredLogger приложения.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// responseData накапливает статус и размер ответа для лога.
type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.data.size += n
	return n, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.data.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// WithLogging логирует каждый запрос: метод, путь, статус, размер и
// длительность.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		data := &responseData{status: http.StatusOK}
		lw := &loggingResponseWriter{ResponseWriter: w, data: data}

		next.ServeHTTP(lw, r)

		logger.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", data.status,
			"size", data.size,
			"duration", time.Since(start),
		)
	})
}
