package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/dkovac/vnetman/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const networkColumns = "name, address_space, location, subnets, tags, state, provider_id, created_at, updated_at"

// NetworkRepository persists network descriptors in PostgreSQL,
// implementing domain.NetworkStore. Subnets and tags are stored as
// jsonb documents; the name column is the uniqueness constraint the
// descriptor model requires.
type NetworkRepository struct {
	pool *pgxpool.Pool
}

func NewNetworkRepository(pool *pgxpool.Pool) *NetworkRepository {
	return &NetworkRepository{pool: pool}
}

func (r *NetworkRepository) Put(ctx context.Context, network domain.Network) error {
	subnets, tags, err := encodeDocs(network)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO networks (`+networkColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE SET
			address_space = EXCLUDED.address_space,
			location      = EXCLUDED.location,
			subnets       = EXCLUDED.subnets,
			tags          = EXCLUDED.tags,
			state         = EXCLUDED.state,
			provider_id   = EXCLUDED.provider_id,
			created_at    = EXCLUDED.created_at,
			updated_at    = EXCLUDED.updated_at`,
		network.Name, network.AddressSpace, network.Location, subnets, tags,
		string(network.State), network.ProviderID, network.CreatedAt, network.UpdatedAt,
	)
	return mapStoreErr(err)
}

// PutIf is the conditional write mutating operations rely on: the row
// is updated only while its persisted state matches expect.
func (r *NetworkRepository) PutIf(ctx context.Context, network domain.Network, expect domain.ProvisioningState) error {
	subnets, tags, err := encodeDocs(network)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE networks SET
			address_space = $2,
			location      = $3,
			subnets       = $4,
			tags          = $5,
			state         = $6,
			provider_id   = $7,
			updated_at    = $8
		WHERE name = $1 AND state = $9`,
		network.Name, network.AddressSpace, network.Location, subnets, tags,
		string(network.State), network.ProviderID, network.UpdatedAt, string(expect),
	)
	if err != nil {
		return mapStoreErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: network %q no longer in state %s", domain.ErrConflict, network.Name, expect)
	}
	return nil
}

func (r *NetworkRepository) Get(ctx context.Context, name string) (domain.Network, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+networkColumns+` FROM networks WHERE name = $1`, name)
	network, err := scanNetwork(row)
	if err != nil {
		return domain.Network{}, mapStoreErr(err)
	}
	return network, nil
}

func (r *NetworkRepository) List(ctx context.Context) ([]domain.Network, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+networkColumns+` FROM networks ORDER BY name`)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	defer rows.Close()

	out := make([]domain.Network, 0)
	for rows.Next() {
		network, err := scanNetwork(rows)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		out = append(out, network)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreErr(err)
	}
	return out, nil
}

func (r *NetworkRepository) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM networks WHERE name = $1`, name)
	if err != nil {
		return false, mapStoreErr(err)
	}
	return tag.RowsAffected() > 0, nil
}

type subnetDoc struct {
	Name          string `json:"name"`
	AddressPrefix string `json:"address_prefix"`
}

func encodeDocs(network domain.Network) ([]byte, []byte, error) {
	docs := make([]subnetDoc, 0, len(network.Subnets))
	for _, sub := range network.Subnets {
		docs = append(docs, subnetDoc{Name: sub.Name, AddressPrefix: sub.AddressPrefix.String()})
	}

	subnets, err := json.Marshal(docs)
	if err != nil {
		return nil, nil, fmt.Errorf("encode subnets: %w", err)
	}

	tagMap := network.Tags
	if tagMap == nil {
		tagMap = map[string]string{}
	}
	tags, err := json.Marshal(tagMap)
	if err != nil {
		return nil, nil, fmt.Errorf("encode tags: %w", err)
	}
	return subnets, tags, nil
}

func decodeSubnets(raw []byte) ([]domain.Subnet, error) {
	var docs []subnetDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode subnets: %w", err)
	}

	out := make([]domain.Subnet, 0, len(docs))
	for _, doc := range docs {
		prefix, err := netip.ParsePrefix(doc.AddressPrefix)
		if err != nil {
			return nil, fmt.Errorf("decode subnet %q prefix: %w", doc.Name, err)
		}
		out = append(out, domain.Subnet{Name: doc.Name, AddressPrefix: prefix})
	}
	return out, nil
}

func scanNetwork(row pgx.Row) (domain.Network, error) {
	var (
		network    domain.Network
		state      string
		rawSubnets []byte
		rawTags    []byte
	)
	err := row.Scan(
		&network.Name, &network.AddressSpace, &network.Location, &rawSubnets, &rawTags,
		&state, &network.ProviderID, &network.CreatedAt, &network.UpdatedAt,
	)
	if err != nil {
		return domain.Network{}, err
	}

	network.State = domain.ProvisioningState(state)
	if network.Subnets, err = decodeSubnets(rawSubnets); err != nil {
		return domain.Network{}, err
	}
	if err := json.Unmarshal(rawTags, &network.Tags); err != nil {
		return domain.Network{}, fmt.Errorf("decode tags: %w", err)
	}
	return network, nil
}

const uniqueViolation = "23505"

func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.ConstraintName)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || pgconn.Timeout(err) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}
