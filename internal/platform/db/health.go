package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Check verifies that the database is reachable before the workflow starts,
// so the user does not get deep into a session with partial functionality.
// Unreachable databases are reported with a connectivity hint.
func Check(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable, check your VPN connection: %w", err)
	}
	return nil
}
