package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"servicehp-backend/internal/config"
)

// Connect opens a bounded connection pool against Postgres. Callers queue
// for a free connection when the pool is saturated; they are never rejected.
// The startup ping is diagnostic only: a dead database logs an error and the
// process keeps serving, surfacing failures per request instead.
func Connect(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	pool.SetMaxOpenConns(cfg.Database.MaxConns)
	pool.SetMaxIdleConns(cfg.Database.MaxConns)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		log.Printf("database connection failed: %v", err)
	} else {
		log.Println("database connected successfully")
	}

	return pool
}
