package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/denmor86/ya-orderdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorage подключается к БД из TEST_DATABASE_DSN и очищает таблицу заказов
func newTestStorage(t *testing.T) OrdersStorage {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, Initialize(ctx, dsn))
	db, err := NewDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Pool.Exec(ctx, `TRUNCATE orders RESTART IDENTITY`)
	require.NoError(t, err)
	return NewStorage(db)
}

func TestOrderDatabase(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Ping(ctx))

	var ids []int64
	for i := 0; i < 55; i++ {
		id, err := storage.AddOrder(ctx, models.OrderRequest{
			Name:    fmt.Sprintf("customer %d", i),
			Email:   "a@b.c",
			Product: "Tea",
		})
		require.NoError(t, err)
		if len(ids) > 0 {
			assert.Greater(t, id, ids[len(ids)-1])
		}
		ids = append(ids, id)
	}

	pending, err := storage.GetOrdersByStatus(ctx, models.OrderStatusPending, 50)
	require.NoError(t, err)
	require.Len(t, pending, 50)
	assert.Equal(t, ids[0], pending[0].ID)
	assert.Equal(t, models.OrderStatusPending, pending[0].Status)
	assert.False(t, pending[0].CreatedAt.IsZero())
	for i := 1; i < len(pending); i++ {
		assert.Less(t, pending[i-1].ID, pending[i].ID)
	}

	updated, err := storage.UpdateOrderStatus(ctx, ids[0], models.OrderStatusProcessed)
	require.NoError(t, err)
	assert.True(t, updated)

	// повторная отметка и несуществующий заказ не являются ошибкой
	_, err = storage.UpdateOrderStatus(ctx, ids[0], models.OrderStatusProcessed)
	require.NoError(t, err)
	updated, err = storage.UpdateOrderStatus(ctx, ids[len(ids)-1]+1000, models.OrderStatusProcessed)
	require.NoError(t, err)
	assert.False(t, updated)

	pending, err = storage.GetOrdersByStatus(ctx, models.OrderStatusPending, 50)
	require.NoError(t, err)
	require.Len(t, pending, 50)
	assert.Equal(t, ids[1], pending[0].ID)
	for _, order := range pending {
		assert.NotEqual(t, ids[0], order.ID)
	}
}
