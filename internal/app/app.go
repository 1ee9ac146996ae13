package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-orderdesk/internal/config"
	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/denmor86/ya-orderdesk/internal/network/router"
	"github.com/denmor86/ya-orderdesk/internal/storage"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func Run(config config.Config, storage storage.OrdersStorage) {

	router := router.NewRouter(config, storage)

	server := &http.Server{
		Addr:              config.Server.ListenAddr,
		Handler:           router.HandleRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infow("Starting server",
			"address", config.Server.ListenAddr,
			"log_level", config.Server.LogLevel,
			"rate_limit", config.Server.RateLimit,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
			select {
			case stop <- syscall.SIGTERM:
			default:
			}
		}
	}()

	<-stop
	logger.Info("Shutdown server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
