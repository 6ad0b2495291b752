package hcloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkovac/vnetman/internal/domain"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// mapErr translates API failures into the domain taxonomy. Context
// expiry passes through untouched so the caller can tell an unknown
// outcome from a clean failure.
func mapErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return err
	}

	var apiErr hcloud.Error
	if !errors.As(err, &apiErr) {
		// Transport-level failure: the API never answered.
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	switch apiErr.Code {
	case hcloud.ErrorCodeNotFound:
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	case hcloud.ErrorCodeRateLimitExceeded,
		hcloud.ErrorCodeConflict,
		hcloud.ErrorCodeLocked,
		hcloud.ErrorCodeResourceLocked,
		hcloud.ErrorCodeResourceUnavailable:
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	default:
		// The API answered and refused: invalid input, quota,
		// uniqueness and the rest are terminal for this request.
		return fmt.Errorf("%w: %v", domain.ErrProviderRejected, err)
	}
}
