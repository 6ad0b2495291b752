package domain

import "context"

// NetworkStore is the metadata store caching descriptors of
// provisioned networks, keyed by network name.
type NetworkStore interface {
	// Put inserts or overwrites the descriptor. Idempotent.
	Put(ctx context.Context, network Network) error
	// PutIf overwrites the descriptor only while its persisted
	// provisioning state equals expect. A miss returns ErrConflict.
	// This is the conditional write mutating operations serialize on.
	PutIf(ctx context.Context, network Network, expect ProvisioningState) error
	Get(ctx context.Context, name string) (Network, error)
	// List returns all descriptors ordered by name.
	List(ctx context.Context) ([]Network, error)
	// Delete removes the entry and reports whether a row existed.
	Delete(ctx context.Context, name string) (bool, error)
}
