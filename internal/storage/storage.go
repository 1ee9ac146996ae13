package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"

	"github.com/denmor86/ya-orderdesk/internal/models"
)

type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.OrderRequest) (int64, error)
	GetOrdersByStatus(ctx context.Context, status string, limit int) ([]models.OrderData, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (bool, error)
	Ping(ctx context.Context) error
}

// Создание хранилища
func NewStorage(db *Database) OrdersStorage {
	return NewOrdersStorage(db)
}
