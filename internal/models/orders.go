package models

import "time"

// Статусы заказов
const (
	OrderStatusPending   = "pending"
	OrderStatusProcessed = "processed"
)

// OrderRequest - данные формы заказа, приходят извне
type OrderRequest struct {
	Name    string
	Email   string
	Product string
	Phone   string
	Comment string
}

// OrderData - модель заказа из хранилища
type OrderData struct {
	ID        int64
	Name      string
	Email     string
	Product   string
	Phone     string
	Comment   string
	Status    string
	CreatedAt time.Time
}

// OrderResponse - модель заказа для выдачи
type OrderResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Product   string `json:"product"`
	Phone     string `json:"phone"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// NewOrderResponse - проекция заказа для ответа
func NewOrderResponse(order OrderData) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		Name:      order.Name,
		Email:     order.Email,
		Product:   order.Product,
		Phone:     order.Phone,
		Comment:   order.Comment,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
}
