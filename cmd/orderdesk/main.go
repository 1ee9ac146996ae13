package main

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-orderdesk/internal/app"
	"github.com/denmor86/ya-orderdesk/internal/config"
	"github.com/denmor86/ya-orderdesk/internal/logger"
	"github.com/denmor86/ya-orderdesk/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	ctx := context.Background()
	// создание таблицы заказов только по явному запросу
	if config.Database.Migrate {
		if err := storage.Initialize(ctx, config.Database.DSN); err != nil {
			logger.Panic("Failed to initialize database:", err.Error())
		}
	}
	// подключение к БД
	db, err := storage.NewDatabase(ctx, config.Database.DSN)
	if err != nil {
		logger.Panic("Failed to connect database:", err.Error())
	}
	defer db.Close()

	app.Run(config, storage.NewStorage(db))
}
