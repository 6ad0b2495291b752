package domain

import "context"

type NetworkService interface {
	CreateNetwork(ctx context.Context, spec NetworkSpec) (Network, error)
	GetNetwork(ctx context.Context, name string) (Network, error)
	ListNetworks(ctx context.Context) ([]Network, error)
	DeleteNetwork(ctx context.Context, name string) error
}
