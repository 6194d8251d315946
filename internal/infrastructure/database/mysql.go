package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Connection wraps the MySQL connection pool.
// sql.DB is already safe for concurrent use and manages its own pool, so no
// extra locking is added here.
type Connection struct {
	db *sql.DB
}

// Connect opens a MySQL pool for dsn, tunes it and verifies it with a ping
func Connect(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Keep idle == open so connections are reused instead of churned under load
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{db: db}, nil
}

// NewConnection wraps an already opened *sql.DB (used by tests with sqlmock)
func NewConnection(db *sql.DB) *Connection {
	return &Connection{db: db}
}

// DB returns the underlying *sql.DB connection
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Ping checks the database is reachable
func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.db.Close()
}
