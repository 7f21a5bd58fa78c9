//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all application tables so each subtest starts from a
// clean slate. CASCADE handles the FK chains (pets/services -> reservations).
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		"TRUNCATE TABLE reservations, pets, services, owners, providers CASCADE")
	return err
}
