package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/ya-orderdesk/internal/helpers"
	"github.com/denmor86/ya-orderdesk/internal/logger"
)

type (
	// берём структуру для хранения сведений об ответе
	ResponseData struct {
		status int
		size   int
	}

	// добавляем реализацию http.ResponseWriter
	LoggingResponseWriter struct {
		http.ResponseWriter // встраиваем оригинальный http.ResponseWriter
		responseData        *ResponseData
	}
)

func (r *LoggingResponseWriter) Write(b []byte) (int, error) {
	if r.responseData.status == 0 {
		r.responseData.status = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *LoggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// Status - код ответа, записанный обработчиком
func (r *LoggingResponseWriter) Status() int {
	if r.responseData.status == 0 {
		return http.StatusOK
	}
	return r.responseData.status
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{ResponseWriter: w, responseData: &ResponseData{}}
}

// LogHandle - middleware-логер для входящих HTTP-запросов.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := NewLoggingResponseWriter(w)
		h.ServeHTTP(lw, r)

		logger.Infow("got incoming HTTP request",
			"uri", r.URL.Path, // без query: в нём передаётся ключ доступа
			"method", r.Method,
			"status", lw.Status(),
			"duration", time.Since(start),
			"size", lw.responseData.size,
			"request_id", helpers.GetRequestID(r.Context()),
		)
	})
}
