package db

import (
	"context"
	"fmt"
	"time"

	"github.com/ShelcyG/todo-app/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// Connect opens the pgx pool and verifies it with a ping. Startup is the
// only place the server retries a database call; request paths never do.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	var lastErr error
	for attempt := 1; ; attempt++ {
		pool, err := pgxpool.New(ctx, dsn)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				logger.Info("database connected", "attempt", attempt)
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		if attempt == connectAttempts {
			return nil, fmt.Errorf("connect database after %d attempts: %w", connectAttempts, lastErr)
		}
		logger.Warn("database not ready", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}
}
