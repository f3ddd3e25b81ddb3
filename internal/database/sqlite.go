package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteDB подключение к SQLite-совместимой базе (диалект libsql).
type SQLiteDB struct {
	Conn   *sql.DB
	Logger *zap.Logger
}

// OpenSQLite открывает базу SQLite по DSN драйвера modernc.
// База в памяти живёт в пределах одного соединения, поэтому пул ограничен одним.
func OpenSQLite(ctx context.Context, dsn string, logger *zap.Logger) (*SQLiteDB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	logger.Info("SQLite database opened", zap.String("dsn", dsn))
	return &SQLiteDB{Conn: conn, Logger: logger}, nil
}

// Ping проверяет соединение с БД
func (db *SQLiteDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Conn.PingContext(ctx)
}

// Close закрывает соединение
func (db *SQLiteDB) Close() {
	if err := db.Conn.Close(); err != nil {
		db.Logger.Error("failed to close sqlite", zap.Error(err))
	}
}
