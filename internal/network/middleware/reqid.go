package middleware

import (
	"net/http"

	"github.com/denmor86/ya-orderdesk/internal/helpers"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок для сквозного идентификатора запроса
const RequestIDHeader = "X-Request-ID"

// RequestID - берёт идентификатор из заголовка или генерирует новый,
// кладёт его в контекст и возвращает клиенту.
func RequestID(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		h.ServeHTTP(w, r.WithContext(helpers.WithRequestID(r.Context(), id)))
	})
}
