package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/suar-net/suar-dash/internal/config"
)

const createProxyRequestTable = `
	CREATE TABLE IF NOT EXISTS ProxyRequest (
		id char(30) PRIMARY KEY,
		clientIP text,
		proxyAuthorization text,
		rawHTTPRequest bytea,
		rawHTTPResponse bytea,
		method text,
		url text,
		error text,
		time bigint,
		upstreamResponseTime bigint,
		processingTime bigint
	)`

func ConnectDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	return db, nil
}

// Migrate creates the ProxyRequest table if it does not exist yet. The proxy
// engine writes into the same table.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createProxyRequestTable); err != nil {
		return fmt.Errorf("failed to create ProxyRequest table: %w", err)
	}
	return nil
}
