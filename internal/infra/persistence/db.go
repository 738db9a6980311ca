package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/slms-platform/erp-server-go-authz/internal/infra/config"
)

// DB は PostgreSQL への接続を表す。
type DB struct {
	conn *sqlx.DB
}

// NewDB はデータベース接続を確立する。
func NewDB(cfg config.DatabaseConfig) (*DB, error) {
	conn, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	return &DB{conn: conn}, nil
}

// Healthy はデータベースへの接続を確認する。
func (db *DB) Healthy(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close はデータベース接続を閉じる。
func (db *DB) Close() error {
	return db.conn.Close()
}
