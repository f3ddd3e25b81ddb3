package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// DBInterface общий жизненный цикл подключения к хранилищу.
type DBInterface interface {
	Ping(ctx context.Context) error
	Close()
}

// DB представляет пул подключений к PostgreSQL
type DB struct {
	Pool   *pgxpool.Pool
	Logger *zap.Logger
}

// NewDB создает пул подключений к PostgreSQL.
// Если в DSN нет пароля, используется authToken.
func NewDB(ctx context.Context, dsn, authToken string, logger *zap.Logger) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if config.ConnConfig.Password == "" && authToken != "" {
		config.ConnConfig.Password = authToken
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	logger.Info("PostgreSQL pool created",
		zap.String("host", config.ConnConfig.Host),
		zap.String("database", config.ConnConfig.Database),
	)
	return &DB{Pool: pool, Logger: logger}, nil
}

// Ping проверяет соединение с БД
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Pool.Ping(ctx)
}

// Close закрывает пул соединений
func (db *DB) Close() {
	db.Pool.Close()
}
