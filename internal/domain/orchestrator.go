package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkovac/vnetman/internal/retry"
)

// Config tunes the orchestrator's interaction with the provider.
type Config struct {
	// ProviderTimeout bounds every single provider call. On expiry the
	// outcome is treated as unknown, never as a clean failure.
	ProviderTimeout time.Duration
	// PendingStaleAfter is how long a Pending record may sit untouched
	// before Get reconciles it against the provider.
	PendingStaleAfter time.Duration
	// Retry applies to transient provider failures only.
	Retry retry.Policy
}

func DefaultConfig() Config {
	return Config{
		ProviderTimeout:   2 * time.Minute,
		PendingStaleAfter: 5 * time.Minute,
		Retry:             retry.DefaultPolicy(),
	}
}

// orchestrator sequences provider calls and store writes for each
// operation. The store is the cache-of-record: reads are served from
// it, and every transitional state (Pending, Deleting) is persisted
// before the provider call it brackets.
type orchestrator struct {
	store    NetworkStore
	provider NetworkProvider
	cfg      Config
	locks    *nameLocks
	now      func() time.Time
}

func NewOrchestrator(store NetworkStore, provider NetworkProvider, cfg Config) NetworkService {
	return &orchestrator{
		store:    store,
		provider: provider,
		cfg:      cfg,
		locks:    newNameLocks(),
		now:      time.Now,
	}
}

func (o *orchestrator) CreateNetwork(ctx context.Context, spec NetworkSpec) (Network, error) {
	network, err := networkFromSpec(spec)
	if err != nil {
		return Network{}, err
	}

	if !o.locks.acquire(spec.Name) {
		return Network{}, fmt.Errorf("%w: operation already in flight for %q", ErrConflict, spec.Name)
	}
	defer o.locks.release(spec.Name)

	existing, err := o.store.Get(ctx, spec.Name)
	switch {
	case err == nil:
		// A Failed record may be replaced by a fresh attempt;
		// anything else is a live resource or an in-flight operation.
		if existing.State != StateFailed {
			return Network{}, fmt.Errorf("%w: network %q", ErrAlreadyExists, spec.Name)
		}
	case !errors.Is(err, ErrNotFound):
		return Network{}, err
	}

	now := o.now()
	network.State = StatePending
	network.ProviderID = ""
	network.CreatedAt = now
	network.UpdatedAt = now
	if err := o.store.Put(ctx, network); err != nil {
		return Network{}, err
	}

	created, err := o.provisionNetwork(ctx, spec)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			// Unknown outcome: the Pending record stays for a later
			// reconciliation pass.
			return Network{}, err
		}

		network.State = StateFailed
		network.UpdatedAt = o.now()
		if putErr := o.store.PutIf(ctx, network, StatePending); putErr != nil {
			return Network{}, errors.Join(err, putErr)
		}
		return Network{}, err
	}

	network.State = StateSucceeded
	network.ProviderID = created.ID
	network.UpdatedAt = o.now()
	if err := o.store.PutIf(ctx, network, StatePending); err != nil {
		return Network{}, err
	}
	return network, nil
}

func (o *orchestrator) GetNetwork(ctx context.Context, name string) (Network, error) {
	network, err := o.store.Get(ctx, name)
	if err != nil {
		return Network{}, err
	}

	if network.State == StatePending && o.now().Sub(network.UpdatedAt) > o.cfg.PendingStaleAfter {
		return o.reconcilePending(ctx, network)
	}
	return network, nil
}

func (o *orchestrator) ListNetworks(ctx context.Context) ([]Network, error) {
	return o.store.List(ctx)
}

func (o *orchestrator) DeleteNetwork(ctx context.Context, name string) error {
	if !o.locks.acquire(name) {
		return fmt.Errorf("%w: operation already in flight for %q", ErrConflict, name)
	}
	defer o.locks.release(name)

	network, err := o.store.Get(ctx, name)
	if err != nil {
		return err
	}

	// A record already in Deleting is a resumed retry: skip straight
	// to the provider call.
	if network.State != StateDeleting {
		previous := network.State
		network.State = StateDeleting
		network.UpdatedAt = o.now()
		if err := o.store.PutIf(ctx, network, previous); err != nil {
			return err
		}
	}

	err = o.deprovisionNetwork(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		// The record stays Deleting; a future DeleteNetwork resumes it.
		return err
	}

	// Provider confirmed deletion (or the resource was already gone);
	// only now may the descriptor leave the store.
	if _, err := o.store.Delete(ctx, name); err != nil {
		return err
	}
	return nil
}

// provisionNetwork calls the provider with per-call timeouts, retrying
// transient failures. Rejections and timeouts are not retried.
func (o *orchestrator) provisionNetwork(ctx context.Context, spec NetworkSpec) (ProviderNetwork, error) {
	var created ProviderNetwork
	err := o.cfg.Retry.Do(ctx, func() error {
		callCtx, cancel := o.providerContext(ctx)
		defer cancel()

		result, err := o.provider.CreateNetwork(callCtx, spec)
		if err != nil {
			return o.classifyProviderErr(callCtx, err)
		}
		created = result
		return nil
	})
	return created, err
}

func (o *orchestrator) deprovisionNetwork(ctx context.Context, name string) error {
	return o.cfg.Retry.Do(ctx, func() error {
		callCtx, cancel := o.providerContext(ctx)
		defer cancel()

		if err := o.provider.DeleteNetwork(callCtx, name); err != nil {
			return o.classifyProviderErr(callCtx, err)
		}
		return nil
	})
}

// reconcilePending adopts the provider state as authoritative for a
// stale Pending record: an existing provider resource means the
// create took effect and only the acknowledgment write was lost.
func (o *orchestrator) reconcilePending(ctx context.Context, network Network) (Network, error) {
	callCtx, cancel := o.providerContext(ctx)
	defer cancel()

	remote, err := o.provider.GetNetwork(callCtx, network.Name)
	switch {
	case err == nil:
		network.State = StateSucceeded
		network.ProviderID = remote.ID
	case errors.Is(err, ErrNotFound):
		network.State = StateFailed
	default:
		// Provider unreachable: serve the cached Pending view.
		return network, nil
	}

	network.UpdatedAt = o.now()
	if err := o.store.PutIf(ctx, network, StatePending); err != nil {
		if errors.Is(err, ErrConflict) {
			// Someone else moved the record first; their write wins.
			return o.store.Get(ctx, network.Name)
		}
		return Network{}, err
	}
	return network, nil
}

func (o *orchestrator) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.cfg.ProviderTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.cfg.ProviderTimeout)
}

// classifyProviderErr decides retryability. Only transient provider
// failures are retried; expiry of the call's context, whether by
// deadline or caller cancellation, means the outcome is unknown and
// must never be silently retried or recorded as a clean failure.
func (o *orchestrator) classifyProviderErr(callCtx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || callCtx.Err() != nil {
		return retry.Permanent(fmt.Errorf("%w: %v", ErrTimeout, err))
	}
	if errors.Is(err, ErrProviderUnavailable) {
		return err
	}
	return retry.Permanent(err)
}
