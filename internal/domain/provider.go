package domain

import (
	"context"
	"net/netip"
)

// ProviderNetwork is the provider-side view of a network resource.
type ProviderNetwork struct {
	ID           string
	Name         string
	AddressSpace netip.Prefix
	Subnets      []Subnet
	State        ProvisioningState
}

// NetworkProvider abstracts the remote provisioning service. Calls
// block until the provider reaches a terminal state or the context
// deadline fires; there are no partial results. Implementations
// translate backend failures into ErrNotFound, ErrProviderRejected
// or ErrProviderUnavailable.
type NetworkProvider interface {
	CreateNetwork(ctx context.Context, spec NetworkSpec) (ProviderNetwork, error)
	GetNetwork(ctx context.Context, name string) (ProviderNetwork, error)
	DeleteNetwork(ctx context.Context, name string) error
	ListNetworks(ctx context.Context) ([]ProviderNetwork, error)
}
