package domain

import (
	"net/netip"
	"time"
)

// ProvisioningState tracks the provider-side lifecycle of a network.
type ProvisioningState string

const (
	StatePending   ProvisioningState = "Pending"
	StateSucceeded ProvisioningState = "Succeeded"
	StateFailed    ProvisioningState = "Failed"
	StateDeleting  ProvisioningState = "Deleting"
	StateDeleted   ProvisioningState = "Deleted"
)

// CanTransition reports whether the state machine allows moving to
// next. States only move forward; Failed is terminal until the caller
// starts a fresh create, which replaces the record rather than
// resurrecting it.
func (s ProvisioningState) CanTransition(next ProvisioningState) bool {
	switch s {
	case StatePending:
		return next == StateSucceeded || next == StateFailed || next == StateDeleting
	case StateSucceeded:
		return next == StateDeleting
	case StateDeleting:
		return next == StateDeleted
	default:
		return false
	}
}

type Subnet struct {
	Name          string
	AddressPrefix netip.Prefix
}

// Network is the resource descriptor persisted in the metadata store.
// The store owns the persisted representation; the orchestrator is
// the only writer.
type Network struct {
	Name         string
	AddressSpace netip.Prefix
	Location     string
	Subnets      []Subnet
	Tags         map[string]string
	State        ProvisioningState
	ProviderID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
