package router

import (
	"net/http"

	"github.com/denmor86/ya-orderdesk/internal/config"
	"github.com/denmor86/ya-orderdesk/internal/metrics"
	"github.com/denmor86/ya-orderdesk/internal/network/handlers"
	"github.com/denmor86/ya-orderdesk/internal/network/middleware"
	"github.com/denmor86/ya-orderdesk/internal/services"
	"github.com/denmor86/ya-orderdesk/internal/storage"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	Config     config.Config
	Orders     services.OrdersService
	Access     services.AccessService
	Limiter    *middleware.RateLimiter
	APILimiter *middleware.RateLimiter
}

func NewRouter(config config.Config, storage storage.OrdersStorage) *Router {
	return &Router{
		Config:     config,
		Orders:     services.NewOrders(storage),
		Access:     services.NewAccess(config.Access),
		Limiter:    middleware.NewRateLimiter(config.Server.RateLimit, config.Server.RateBurst),
		APILimiter: middleware.NewRateLimiter(config.Server.APIRateLimit, config.Server.APIRateBurst),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.LogHandle)
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.Config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(handlers.MethodNotAllowedHandler())
	r.NotFound(handlers.NotFoundHandler())

	insertOrder := handlers.InsertOrderHandler(router.Orders)
	getOrders := handlers.GetOrdersHandler(router.Orders, router.Access)
	markProcessed := handlers.MarkProcessedHandler(router.Orders, router.Access)

	// публичная форма заказа
	for _, path := range []string{"/insert_order", "/insert_order.php"} {
		r.With(router.Limiter.Limit).Post(path, insertOrder)
	}
	// закрытые методы для оператора со своим лимитом
	r.Route("/api", func(r chi.Router) {
		r.Use(router.APILimiter.Limit)
		r.Get("/get_orders", getOrders)
		r.Get("/get_orders.php", getOrders)
		r.Post("/mark_processed", markProcessed)
		r.Post("/mark_processed.php", markProcessed)
	})

	r.Get("/ping", handlers.PingHandler(router.Orders))
	// только для внутренней сети, наружу не публикуется
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}
