package models

// InsertOrderResponse - ответ на создание заказа
type InsertOrderResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// OrdersListResponse - ответ со списком ожидающих заказов
type OrdersListResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// SuccessResponse - пустой успешный ответ
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse - ответ с ошибкой. Внутренние подробности клиенту не отдаются.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code,omitempty"`
	Fields    []string `json:"fields,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}
