package domain

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

const (
	minNameLen = 2
	maxNameLen = 64
)

// networkFromSpec validates the spec and builds the descriptor the
// orchestrator will persist. No store or provider call happens before
// this passes.
func networkFromSpec(spec NetworkSpec) (Network, error) {
	if len(spec.Name) < minNameLen || len(spec.Name) > maxNameLen {
		return Network{}, fmt.Errorf("%w: network name must be %d-%d characters", ErrInvalidInput, minNameLen, maxNameLen)
	}

	space, err := netip.ParsePrefix(spec.AddressSpace)
	if err != nil {
		return Network{}, fmt.Errorf("%w: invalid address space %q", ErrInvalidInput, spec.AddressSpace)
	}

	if len(spec.Subnets) == 0 {
		return Network{}, fmt.Errorf("%w: at least one subnet is required", ErrInvalidInput)
	}

	subnets := make([]Subnet, 0, len(spec.Subnets))
	seen := make(map[string]struct{}, len(spec.Subnets))
	for _, sub := range spec.Subnets {
		if sub.Name == "" {
			return Network{}, fmt.Errorf("%w: subnet name must not be empty", ErrInvalidInput)
		}
		if _, dup := seen[sub.Name]; dup {
			return Network{}, fmt.Errorf("%w: duplicate subnet name %q", ErrInvalidInput, sub.Name)
		}
		seen[sub.Name] = struct{}{}

		prefix, err := netip.ParsePrefix(sub.AddressPrefix)
		if err != nil {
			return Network{}, fmt.Errorf("%w: invalid address prefix %q for subnet %q", ErrInvalidInput, sub.AddressPrefix, sub.Name)
		}
		if err := validatePrefixInSpace(space, prefix); err != nil {
			return Network{}, fmt.Errorf("%w: subnet %q: %v", ErrInvalidInput, sub.Name, err)
		}
		for _, prev := range subnets {
			if prev.AddressPrefix.Overlaps(prefix) {
				return Network{}, fmt.Errorf("%w: subnet %q overlaps subnet %q", ErrInvalidInput, sub.Name, prev.Name)
			}
		}

		subnets = append(subnets, Subnet{Name: sub.Name, AddressPrefix: prefix})
	}

	return Network{
		Name:         spec.Name,
		AddressSpace: space,
		Location:     spec.Location,
		Subnets:      subnets,
		Tags:         spec.Tags,
	}, nil
}

func validatePrefixInSpace(space, prefix netip.Prefix) error {
	if prefix.Addr().Is4() != space.Addr().Is4() {
		return fmt.Errorf("address family differs from address space")
	}

	r := netipx.RangeOfPrefix(prefix)
	if !space.Contains(r.From()) || !space.Contains(r.To()) {
		return fmt.Errorf("prefix %s outside address space %s", prefix, space)
	}
	return nil
}
