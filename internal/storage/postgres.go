package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type Database struct {
	Pool *pgxpool.Pool
}

const (
	CheckExist          = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname =$1)`
	CreateDatabaseQuery = `CREATE DATABASE %s`
)

// NewDatabase - открывает подключение и проверяет доступность БД.
// Ошибка здесь фатальна для процесса.
func NewDatabase(ctx context.Context, dsn string) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to connect database: %w", err)
	}
	return &Database{Pool: pool}, nil
}

// Initialize - создание БД и таблицы заказов. Вызывается до NewDatabase,
// так как NewDatabase требует существующую БД.
func Initialize(ctx context.Context, dsn string) error {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}
	if err := CreateDatabase(ctx, cfg); err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	if err := Migration(dsn); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}
	return nil
}

//go:embed migrations/*.sql
var embedMigrations embed.FS

func Migration(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db error: %w ", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w ", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose run migrations error:  %w ", err)
	}
	return nil
}

func (s *Database) Close() error {
	s.Pool.Close()
	return nil
}

func CreateDatabase(ctx context.Context, config *pgx.ConnConfig) error {
	// goose не умеет создавать БД
	conn, err := pgx.ConnectConfig(ctx, config)
	if err == nil {
		return conn.Close(ctx)
	}
	// если не получилось соединиться с БД из строки подключения
	// пробуем использовать дефолтную БД
	cfg := config.Copy()
	cfg.Database = `postgres`
	conn, err = pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer conn.Close(ctx)

	var exist bool
	if err = conn.QueryRow(ctx, CheckExist, config.Database).Scan(&exist); err != nil {
		return fmt.Errorf("failed to check database exists: %w", err)
	}
	if !exist {
		name := pgx.Identifier{config.Database}.Sanitize()
		if _, err = conn.Exec(ctx, fmt.Sprintf(CreateDatabaseQuery, name)); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}
	return nil
}
