package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The state column is indexed so reconciliation sweeps can find
// Pending and Deleting records without a full scan.
const schema = `
CREATE TABLE IF NOT EXISTS networks (
    name          text PRIMARY KEY,
    address_space cidr NOT NULL,
    location      text NOT NULL,
    subnets       jsonb NOT NULL,
    tags          jsonb NOT NULL DEFAULT '{}'::jsonb,
    state         text NOT NULL,
    provider_id   text NOT NULL DEFAULT '',
    created_at    timestamptz NOT NULL,
    updated_at    timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS networks_state_idx ON networks (state);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
