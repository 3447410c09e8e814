package availability

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
)

// executeWindows fetches and resolves every window concurrently and returns
// the per-window grids in window order.
//
// The fan-out is a join-all over independent fetches: windows share no
// mutable state and each writes only its own slot. Any failure cancels the
// sibling fetches and aborts the whole request; a partial merge would
// silently under-report occupancy for the unresolved windows.
func executeWindows(ctx context.Context, store Store, windows []DateRange, officeID string, asOf time.Time) ([][]SuiteDays, error) {
	g, ctx := errgroup.WithContext(ctx)
	grids := make([][]SuiteDays, len(windows))

	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			data, err := store.FetchWindow(ctx, w, officeID, asOf)
			if err != nil {
				return err
			}
			grids[i] = ResolveGrid(w, data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Permission and routing failures keep their own codes; everything
		// else surfaces as a partial-fetch failure for the request.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, ErrPartialFetch.WithCause(err)
	}

	return grids, nil
}
