package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr       string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN      string `env:"DATABASE_DSN" envDefault:""`
	DatabaseHost     string `env:"DB_HOST" envDefault:"localhost"`
	DatabasePort     int    `env:"DB_PORT" envDefault:"5432"`
	DatabaseName     string `env:"DB_NAME" envDefault:"orders"`
	DatabaseUser     string `env:"DB_USER" envDefault:"postgres"`
	DatabasePassword string `env:"DB_PASS" envDefault:""`
	Migrate          bool   `env:"DB_MIGRATE" envDefault:"false"`
	APIKey           string `env:"API_KEY" envDefault:""`
	ListKey          string `env:"ORDERS_LIST_KEY" envDefault:""`
	ProcessKey       string `env:"ORDERS_PROCESS_KEY" envDefault:""`
	RateLimit        int    `env:"RATE_LIMIT" envDefault:"0"`
	RateBurst        int    `env:"RATE_BURST" envDefault:"5"`
	APIRateLimit     int    `env:"API_RATE_LIMIT" envDefault:"10"`
	APIRateBurst     int    `env:"API_RATE_BURST" envDefault:"20"`
	CORSOrigins      string `env:"CORS_ORIGINS" envDefault:"*"`
}

// ServerConfig модель настроек HTTP сервера
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
	RateLimit  int
	RateBurst  int

	// лимит для закрытых методов /api, отдельный от публичной формы
	APIRateLimit int
	APIRateBurst int
	CORSOrigins  []string
}

// DatabaseConfig модель настроек подключения к БД
type DatabaseConfig struct {
	DSN     string
	Migrate bool
}

// AccessConfig ключи доступа к закрытым методам; пустой ключ закрывает доступ полностью
type AccessConfig struct {
	ListKey    string
	ProcessKey string
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Access   AccessConfig
}

func NewConfig() Config {
	config, err := Parse(os.Args[1:])
	if err != nil {
		panic(fmt.Sprintf("Failed to parse configuration: %s", err.Error()))
	}
	return config
}

// Parse - читает переменные окружения, затем аргументы командной строки.
// Флаги имеют приоритет, значения окружения служат для них значениями по умолчанию.
func Parse(arguments []string) (Config, error) {
	var args Arguments
	if err := env.Parse(&args); err != nil {
		return Config{}, fmt.Errorf("failed to parse enviroment var: %w", err)
	}

	flags := pflag.NewFlagSet("orderdesk", pflag.ContinueOnError)
	var (
		server   = flags.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = flags.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = flags.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		migrate  = flags.BoolP("migrate", "m", args.Migrate, "Create the orders table on startup")
		key      = flags.StringP("key", "k", args.APIKey, "Shared API key for protected endpoints")
	)
	if err := flags.Parse(arguments); err != nil {
		return Config{}, err
	}

	dsn := *DSN
	if dsn == "" {
		dsn = BuildDSN(args.DatabaseHost, args.DatabasePort, args.DatabaseName, args.DatabaseUser, args.DatabasePassword)
	}

	return Config{
		Server: ServerConfig{
			ListenAddr:   *server,
			LogLevel:     *logLevel,
			RateLimit:    args.RateLimit,
			RateBurst:    args.RateBurst,
			APIRateLimit: args.APIRateLimit,
			APIRateBurst: args.APIRateBurst,
			CORSOrigins:  splitList(args.CORSOrigins),
		},
		Database: DatabaseConfig{
			DSN:     dsn,
			Migrate: *migrate,
		},
		Access: AccessConfig{
			ListKey:    firstNonEmpty(args.ListKey, *key),
			ProcessKey: firstNonEmpty(args.ProcessKey, *key),
		},
	}, nil
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:   "localhost:8080",
			LogLevel:     "info",
			RateBurst:    5,
			APIRateLimit: 10,
			APIRateBurst: 20,
			CORSOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			DSN: BuildDSN("localhost", 5432, "orders", "postgres", ""),
		},
	}
}

// BuildDSN собирает строку подключения postgres из отдельных параметров
func BuildDSN(host string, port int, name, user, password string) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	if password != "" {
		u.User = url.UserPassword(user, password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
