package db

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"testing"

	"github.com/dkovac/vnetman/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// timeoutNetError satisfies net.Error, standing in for a dial that
// timed out.
type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestSubnetDocsRoundTrip(t *testing.T) {
	network := domain.Network{
		Name: "net-a",
		Subnets: []domain.Subnet{
			{Name: "s1", AddressPrefix: netip.MustParsePrefix("10.0.1.0/24")},
			{Name: "s2", AddressPrefix: netip.MustParsePrefix("10.0.2.0/24")},
		},
		Tags: map[string]string{"env": "prod"},
	}

	rawSubnets, rawTags, err := encodeDocs(network)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(rawTags) != `{"env":"prod"}` {
		t.Fatalf("unexpected tags document: %s", rawTags)
	}

	subnets, err := decodeSubnets(rawSubnets)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(subnets) != 2 {
		t.Fatalf("expected 2 subnets, got %d", len(subnets))
	}
	if subnets[0].Name != "s1" || subnets[0].AddressPrefix != network.Subnets[0].AddressPrefix {
		t.Fatalf("unexpected first subnet: %+v", subnets[0])
	}
}

func TestEncodeDocsNilTagsBecomeEmptyObject(t *testing.T) {
	_, rawTags, err := encodeDocs(domain.Network{Name: "net-a"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(rawTags) != "{}" {
		t.Fatalf("expected empty json object, got %s", rawTags)
	}
}

func TestDecodeSubnetsRejectsBadPrefix(t *testing.T) {
	_, err := decodeSubnets([]byte(`[{"name":"s1","address_prefix":"not-a-cidr"}]`))
	if err == nil {
		t.Fatal("expected error for malformed prefix")
	}
}

func TestMapStoreErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows",
			err:      pgx.ErrNoRows,
			expected: domain.ErrNotFound,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: uniqueViolation, ConstraintName: "networks_pkey"},
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "dial timeout",
			err:      fmt.Errorf("exec: %w", timeoutNetError{}),
			expected: domain.ErrStoreUnavailable,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			expected: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapStoreErr(tt.err)
			if tt.expected == nil {
				if result != nil {
					t.Errorf("mapStoreErr(%v) = %v, want nil", tt.err, result)
				}
				return
			}
			if !errors.Is(result, tt.expected) {
				t.Errorf("mapStoreErr(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestMapStoreErrKeepsOtherPgErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	result := mapStoreErr(pgErr)
	if !errors.Is(result, pgErr) {
		t.Fatalf("expected original error, got %v", result)
	}
	if errors.Is(result, domain.ErrAlreadyExists) || errors.Is(result, domain.ErrStoreUnavailable) {
		t.Fatalf("unexpected classification: %v", result)
	}
}
