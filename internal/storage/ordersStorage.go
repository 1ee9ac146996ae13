package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/ya-orderdesk/internal/metrics"
	"github.com/denmor86/ya-orderdesk/internal/models"
)

const (
	InsertOrder = `INSERT INTO orders (name, email, product, phone, comment)
					VALUES ($1, $2, $3, $4, $5)
					RETURNING id;`
	GetOrdersByStatus = `SELECT id, name, email, product, phone, comment, status, created_at
						 FROM orders
						 WHERE status = $1
						 ORDER BY id ASC
						 LIMIT $2;`
	UpdateOrderStatus = `UPDATE orders SET status = $1 WHERE id = $2;`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

// AddOrder - вставка заказа, статус и дата создания проставляются БД
func (s *OrderDatabase) AddOrder(ctx context.Context, order models.OrderRequest) (int64, error) {
	defer metrics.ObserveDBQuery("insert", time.Now())

	var id int64
	err := s.DB.Pool.QueryRow(ctx, InsertOrder,
		order.Name,
		order.Email,
		order.Product,
		order.Phone,
		order.Comment,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add order: %w", err)
	}
	return id, nil
}

func (s *OrderDatabase) GetOrdersByStatus(ctx context.Context, status string, limit int) ([]models.OrderData, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	rows, err := s.DB.Pool.Query(ctx, GetOrdersByStatus, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.OrderData, 0, limit)
	for rows.Next() {
		var order models.OrderData
		err := rows.Scan(
			&order.ID,
			&order.Name,
			&order.Email,
			&order.Product,
			&order.Phone,
			&order.Comment,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed read orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus - возвращает false, если строка не изменилась (заказа нет)
func (s *OrderDatabase) UpdateOrderStatus(ctx context.Context, id int64, status string) (bool, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	tag, err := s.DB.Pool.Exec(ctx, UpdateOrderStatus, status, id)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *OrderDatabase) Ping(ctx context.Context) error {
	return s.DB.Pool.Ping(ctx)
}
