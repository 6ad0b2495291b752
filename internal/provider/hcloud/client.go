// Package hcloud adapts the Hetzner Cloud API to the
// domain.NetworkProvider contract.
package hcloud

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/dkovac/vnetman/internal/domain"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Client provisions virtual networks through the Hetzner Cloud API.
// Calls block until the API reports a terminal state; callers bound
// them with a context deadline.
type Client struct {
	client *hcloud.Client
	zone   hcloud.NetworkZone
}

// Option configures a Client.
type Option func(*Client)

// WithHCloudClient swaps the underlying API client, used by tests to
// point at a fake endpoint.
func WithHCloudClient(hc *hcloud.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient builds a provider client. zone is the network zone subnets
// are placed in when the spec does not carry a location.
func NewClient(token, zone string, opts ...Option) *Client {
	c := &Client{
		client: hcloud.NewClient(hcloud.WithToken(token)),
		zone:   hcloud.NetworkZone(zone),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateNetwork(ctx context.Context, spec domain.NetworkSpec) (domain.ProviderNetwork, error) {
	_, ipRange, err := net.ParseCIDR(spec.AddressSpace)
	if err != nil {
		return domain.ProviderNetwork{}, fmt.Errorf("%w: address space %q: %v", domain.ErrProviderRejected, spec.AddressSpace, err)
	}

	zone := c.zone
	if spec.Location != "" {
		zone = hcloud.NetworkZone(spec.Location)
	}

	subnets := make([]hcloud.NetworkSubnet, 0, len(spec.Subnets))
	for _, sub := range spec.Subnets {
		_, subRange, err := net.ParseCIDR(sub.AddressPrefix)
		if err != nil {
			return domain.ProviderNetwork{}, fmt.Errorf("%w: subnet %q prefix %q: %v", domain.ErrProviderRejected, sub.Name, sub.AddressPrefix, err)
		}
		subnets = append(subnets, hcloud.NetworkSubnet{
			Type:        hcloud.NetworkSubnetTypeCloud,
			IPRange:     subRange,
			NetworkZone: zone,
		})
	}

	network, _, err := c.client.Network.Create(ctx, hcloud.NetworkCreateOpts{
		Name:    spec.Name,
		IPRange: ipRange,
		Subnets: subnets,
		Labels:  spec.Tags,
	})
	if err != nil {
		return domain.ProviderNetwork{}, mapErr(ctx, err)
	}
	return toProviderNetwork(network)
}

func (c *Client) GetNetwork(ctx context.Context, name string) (domain.ProviderNetwork, error) {
	network, _, err := c.client.Network.Get(ctx, name)
	if err != nil {
		return domain.ProviderNetwork{}, mapErr(ctx, err)
	}
	if network == nil {
		return domain.ProviderNetwork{}, fmt.Errorf("%w: network %q", domain.ErrNotFound, name)
	}
	return toProviderNetwork(network)
}

func (c *Client) DeleteNetwork(ctx context.Context, name string) error {
	network, _, err := c.client.Network.Get(ctx, name)
	if err != nil {
		return mapErr(ctx, err)
	}
	if network == nil {
		return fmt.Errorf("%w: network %q", domain.ErrNotFound, name)
	}

	if _, err := c.client.Network.Delete(ctx, network); err != nil {
		return mapErr(ctx, err)
	}
	return nil
}

func (c *Client) ListNetworks(ctx context.Context) ([]domain.ProviderNetwork, error) {
	networks, err := c.client.Network.All(ctx)
	if err != nil {
		return nil, mapErr(ctx, err)
	}

	out := make([]domain.ProviderNetwork, 0, len(networks))
	for _, network := range networks {
		mapped, err := toProviderNetwork(network)
		if err != nil {
			return nil, err
		}
		out = append(out, mapped)
	}
	return out, nil
}

// toProviderNetwork maps the API object onto the provider-side view.
// Hetzner subnets carry no names, so only their ranges come back;
// descriptor subnet names live in the metadata store.
func toProviderNetwork(network *hcloud.Network) (domain.ProviderNetwork, error) {
	space, err := netip.ParsePrefix(network.IPRange.String())
	if err != nil {
		return domain.ProviderNetwork{}, fmt.Errorf("parse network ip range %q: %w", network.IPRange, err)
	}

	subnets := make([]domain.Subnet, 0, len(network.Subnets))
	for _, sub := range network.Subnets {
		prefix, err := netip.ParsePrefix(sub.IPRange.String())
		if err != nil {
			return domain.ProviderNetwork{}, fmt.Errorf("parse subnet ip range %q: %w", sub.IPRange, err)
		}
		subnets = append(subnets, domain.Subnet{AddressPrefix: prefix})
	}

	return domain.ProviderNetwork{
		ID:           strconv.FormatInt(network.ID, 10),
		Name:         network.Name,
		AddressSpace: space,
		Subnets:      subnets,
		State:        domain.StateSucceeded,
	}, nil
}
