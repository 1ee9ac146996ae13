package helpers

import (
	"context"
	"net/http"
)

// APIKeyHeader - заголовок, альтернативный параметру key
const APIKeyHeader = "X-API-Key"

type ctxKey struct{}

// GetAPIKey - извлекает ключ доступа из параметра key (query или form), затем из заголовка.
// Значение не нормализуется: ключ сравнивается побайтно.
func GetAPIKey(r *http.Request) string {
	if key := r.FormValue("key"); key != "" {
		return key
	}
	return r.Header.Get(APIKeyHeader)
}

// WithRequestID - сохраняет идентификатор запроса в контексте
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// GetRequestID - идентификатор запроса из контекста, пустая строка если его нет
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
