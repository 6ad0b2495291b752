package http

import (
	"time"

	"github.com/dkovac/vnetman/internal/domain"
)

// SubnetPayload describes one subnet in requests and responses.
type SubnetPayload struct {
	Name          string `json:"name" example:"s1"`
	AddressPrefix string `json:"address_prefix" example:"10.0.1.0/24"`
}

// CreateNetworkRequest is the payload accepted when creating a network.
type CreateNetworkRequest struct {
	Name         string            `json:"name" example:"net-a" validate:"required"`
	AddressSpace string            `json:"address_space" example:"10.0.0.0/16" validate:"required"`
	Location     string            `json:"location" example:"eu-central"`
	Subnets      []SubnetPayload   `json:"subnets" validate:"required"`
	Tags         map[string]string `json:"tags,omitempty"`
}

// NetworkResponse is the full descriptor view returned to clients.
type NetworkResponse struct {
	Name              string            `json:"name" example:"net-a"`
	AddressSpace      string            `json:"address_space" example:"10.0.0.0/16"`
	Location          string            `json:"location" example:"eu-central"`
	Subnets           []SubnetPayload   `json:"subnets"`
	Tags              map[string]string `json:"tags,omitempty"`
	ProvisioningState string            `json:"provisioning_state" example:"Succeeded"`
	ProviderID        string            `json:"provider_id,omitempty" example:"4711"`
	CreatedAt         time.Time         `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt         time.Time         `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// NetworkListItem is the summary view used by the list endpoint.
type NetworkListItem struct {
	Name              string    `json:"name" example:"net-a"`
	AddressSpace      string    `json:"address_space" example:"10.0.0.0/16"`
	Location          string    `json:"location" example:"eu-central"`
	SubnetCount       int       `json:"subnet_count" example:"2"`
	ProvisioningState string    `json:"provisioning_state" example:"Succeeded"`
	ProviderID        string    `json:"provider_id,omitempty" example:"4711"`
	CreatedAt         time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
}

// ErrorResponse is the envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"network not found"`
	Code  string `json:"code" example:"not_found"`
}

func (r CreateNetworkRequest) toSpec() domain.NetworkSpec {
	subnets := make([]domain.SubnetSpec, 0, len(r.Subnets))
	for _, sub := range r.Subnets {
		subnets = append(subnets, domain.SubnetSpec{
			Name:          sub.Name,
			AddressPrefix: sub.AddressPrefix,
		})
	}
	return domain.NetworkSpec{
		Name:         r.Name,
		AddressSpace: r.AddressSpace,
		Location:     r.Location,
		Subnets:      subnets,
		Tags:         r.Tags,
	}
}

func networkToResponse(n domain.Network) NetworkResponse {
	subnets := make([]SubnetPayload, 0, len(n.Subnets))
	for _, sub := range n.Subnets {
		subnets = append(subnets, SubnetPayload{
			Name:          sub.Name,
			AddressPrefix: sub.AddressPrefix.String(),
		})
	}
	return NetworkResponse{
		Name:              n.Name,
		AddressSpace:      n.AddressSpace.String(),
		Location:          n.Location,
		Subnets:           subnets,
		Tags:              n.Tags,
		ProvisioningState: string(n.State),
		ProviderID:        n.ProviderID,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

func networksToList(networks []domain.Network) []NetworkListItem {
	out := make([]NetworkListItem, 0, len(networks))
	for _, n := range networks {
		out = append(out, NetworkListItem{
			Name:              n.Name,
			AddressSpace:      n.AddressSpace.String(),
			Location:          n.Location,
			SubnetCount:       len(n.Subnets),
			ProvisioningState: string(n.State),
			ProviderID:        n.ProviderID,
			CreatedAt:         n.CreatedAt,
		})
	}
	return out
}
