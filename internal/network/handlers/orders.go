package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-orderdesk/internal/helpers"
	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/denmor86/ya-orderdesk/internal/models"
	"github.com/denmor86/ya-orderdesk/internal/services"
	"github.com/denmor86/ya-orderdesk/internal/validators"
)

// максимальный размер multipart-формы в памяти
const maxFormMemory = 1 << 20

func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// InsertOrderHandler - приём заказа из публичной формы
func InsertOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, MsgInvalidMethod)
			return
		}
		if err := parseForm(r); err != nil {
			logger.Warnw("Invalid form", "error", err, "request_id", helpers.GetRequestID(r.Context()))
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error:  MsgMissingFields,
				Fields: validators.RequiredFields,
			})
			return
		}

		order := models.OrderRequest{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Product: r.PostFormValue("product"),
			Phone:   r.PostFormValue("phone"),
			Comment: r.PostFormValue("comment"),
		}

		id, err := s.CreateOrder(r.Context(), order)
		if err != nil {
			var missing *services.MissingFieldsError
			var invalid *services.InvalidFieldsError
			switch {
			case errors.As(err, &missing):
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error:  MsgMissingFields,
					Fields: missing.Fields,
				})
			case errors.As(err, &invalid):
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error:  MsgInvalidFields,
					Fields: invalid.Fields,
				})
			case errors.Is(err, services.ErrInvalidInput):
				logger.Warnw("Order rejected by storage", "error", err, "request_id", helpers.GetRequestID(r.Context()))
				writeError(w, http.StatusBadRequest, MsgInvalidFields)
			default:
				writeStorageError(w, r, http.StatusInternalServerError, MsgStorageFailure, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, models.InsertOrderResponse{Success: true, ID: id})
	})
}

// GetOrdersHandler - список заказов в статусе pending
func GetOrdersHandler(s services.OrdersService, a services.AccessService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.Authorize(services.ScopeList, helpers.GetAPIKey(r)); err != nil {
			logger.Warnw("Unauthorized request", "scope", services.ScopeList, "request_id", helpers.GetRequestID(r.Context()))
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		orders, err := s.GetPendingOrders(r.Context())
		if err != nil {
			writeStorageError(w, r, http.StatusInternalServerError, MsgStorageFailure, err)
			return
		}

		response := models.OrdersListResponse{
			Success: true,
			Orders:  make([]models.OrderResponse, 0, len(orders)),
		}
		for _, order := range orders {
			response.Orders = append(response.Orders, models.NewOrderResponse(order))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// MarkProcessedHandler - перевод заказа в статус processed
func MarkProcessedHandler(s services.OrdersService, a services.AccessService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			logger.Warnw("Invalid form", "error", err, "request_id", helpers.GetRequestID(r.Context()))
		}
		if err := a.Authorize(services.ScopeProcess, helpers.GetAPIKey(r)); err != nil {
			logger.Warnw("Unauthorized request", "scope", services.ScopeProcess, "request_id", helpers.GetRequestID(r.Context()))
			writeError(w, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		id, ok := validators.ParseOrderID(r.FormValue("id"))
		if !ok {
			writeError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}

		if err := s.MarkProcessed(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, MsgInvalidID)
			default:
				writeStorageError(w, r, http.StatusInternalServerError, MsgStorageFailure, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	})
}

// PingHandler - проверка доступности БД
func PingHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			logger.Errorw("Storage ping failed", "error", err, "request_id", helpers.GetRequestID(r.Context()))
			writeError(w, http.StatusServiceUnavailable, MsgStorageUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	})
}
