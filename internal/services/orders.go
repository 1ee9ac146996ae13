package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/denmor86/ya-orderdesk/internal/metrics"
	"github.com/denmor86/ya-orderdesk/internal/models"
	"github.com/denmor86/ya-orderdesk/internal/storage"
	"github.com/denmor86/ya-orderdesk/internal/validators"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
)

// PendingOrdersLimit - максимальное число заказов в одной выдаче
const PendingOrdersLimit = 50

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrMissingFields  = fmt.Errorf("%w: missing fields", ErrInvalidInput)
	ErrInvalidFields  = fmt.Errorf("%w: invalid fields", ErrInvalidInput)
	ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", ErrInvalidInput)
	ErrStorageFailure = errors.New("storage failure")
)

// MissingFieldsError - ошибка валидации с перечнем незаполненных полей
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMissingFields, e.Fields)
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// InvalidFieldsError - поля, содержащие данные, которые нельзя сохранить как текст
type InvalidFieldsError struct {
	Fields []string
}

func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidFields, e.Fields)
}

func (e *InvalidFieldsError) Unwrap() error {
	return ErrInvalidFields
}

// isDataError - БД отклонила сами данные (классы SQLSTATE 22 и 23), а не недоступна
func isDataError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	class := pgErr.Code[:2]
	return class == "22" || class == "23"
}

// wrapStorageError - ошибки данных относятся к входу клиента, остальные к хранилищу
func wrapStorageError(err error) error {
	if isDataError(err) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}

type OrdersService interface {
	CreateOrder(ctx context.Context, order models.OrderRequest) (int64, error)
	GetPendingOrders(ctx context.Context) ([]models.OrderData, error)
	MarkProcessed(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type Orders struct {
	Storage storage.OrdersStorage
	Breaker *gobreaker.CircuitBreaker
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "orders-storage",
		Timeout: 30 * time.Second, // через 30 сек пробуем снова обратиться к БД
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
		// отмена запроса клиентом и отказ БД принять данные не говорят о недоступности БД
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || isDataError(err)
		},
	})
}

// Создание сервиса
func NewOrders(storage storage.OrdersStorage) OrdersService {
	return &Orders{Storage: storage, Breaker: InitCircuitBreaker()}
}

// CreateOrder - проверяет обязательные поля и сохраняет заказ в статусе pending
func (s *Orders) CreateOrder(ctx context.Context, order models.OrderRequest) (int64, error) {
	order = validators.NormalizeOrder(order)
	if missing := validators.MissingFields(order); len(missing) > 0 {
		return 0, &MissingFieldsError{Fields: missing}
	}
	if invalid := validators.InvalidFields(order); len(invalid) > 0 {
		return 0, &InvalidFieldsError{Fields: invalid}
	}

	result, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.Storage.AddOrder(ctx, order)
	})
	if err != nil {
		return 0, wrapStorageError(err)
	}
	id := result.(int64)
	metrics.OrdersTotal.WithLabelValues("created").Inc()
	logger.Infow("order created", "id", id)
	return id, nil
}

// GetPendingOrders - не более PendingOrdersLimit заказов в статусе pending по возрастанию id
func (s *Orders) GetPendingOrders(ctx context.Context) ([]models.OrderData, error) {
	result, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.Storage.GetOrdersByStatus(ctx, models.OrderStatusPending, PendingOrdersLimit)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	orders, _ := result.([]models.OrderData)
	return orders, nil
}

// MarkProcessed - переводит заказ в processed. Повторный вызов и несуществующий id не считаются ошибкой.
func (s *Orders) MarkProcessed(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}

	result, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.Storage.UpdateOrderStatus(ctx, id, models.OrderStatusProcessed)
	})
	if err != nil {
		return wrapStorageError(err)
	}
	if updated, _ := result.(bool); !updated {
		logger.Warnw("mark processed: order not found", "id", id)
		return nil
	}
	metrics.OrdersTotal.WithLabelValues("processed").Inc()
	logger.Infow("order processed", "id", id)
	return nil
}

func (s *Orders) Ping(ctx context.Context) error {
	if err := s.Storage.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}
