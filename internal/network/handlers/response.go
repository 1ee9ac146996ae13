package handlers

import (
	"net/http"

	"github.com/denmor86/ya-orderdesk/internal/helpers"
	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/denmor86/ya-orderdesk/internal/models"
	"github.com/goccy/go-json"
)

const (
	MsgInvalidMethod      = "Invalid method"
	MsgMissingFields      = "Missing fields"
	MsgInvalidFields      = "Invalid fields"
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidID          = "Invalid id"
	MsgStorageFailure     = "Storage failure"
	MsgStorageUnavailable = "Storage unavailable"
	MsgNotFound           = "Not found"

	CodeStorageFailure = "storage_failure"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorw("Failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeStorageError - клиенту отдаётся только код и идентификатор запроса, подробности остаются в логе
func writeStorageError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	requestID := helpers.GetRequestID(r.Context())
	logger.Errorw(message, "error", err, "uri", r.URL.Path, "request_id", requestID)
	writeJSON(w, status, models.ErrorResponse{
		Error:     message,
		Code:      CodeStorageFailure,
		RequestID: requestID,
	})
}

// MethodNotAllowedHandler - ответ на неподдерживаемый метод
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, MsgInvalidMethod)
	}
}

// NotFoundHandler - ответ на неизвестный маршрут
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, MsgNotFound)
	}
}
