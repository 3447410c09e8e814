package availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeStore serves canned window data and records every fetched window.
type fakeStore struct {
	mu    sync.Mutex
	calls []DateRange
	fetch func(w DateRange, officeID string) (*WindowData, error)
}

func (f *fakeStore) FetchWindow(ctx context.Context, w DateRange, officeID string, asOf time.Time) (*WindowData, error) {
	f.mu.Lock()
	f.calls = append(f.calls, w)
	f.mu.Unlock()

	if f.fetch != nil {
		return f.fetch(w, officeID)
	}
	return &WindowData{}, nil
}

func (f *fakeStore) windows() []DateRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]DateRange(nil), f.calls...)
}

func TestExecuteWindowsFetchesEveryWindow(t *testing.T) {
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			return &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1"}},
			}, nil
		},
	}

	r := DateRange{Start: day(2024, 1, 1), End: day(2024, 3, 30)}
	windows := Chunk(r)

	grids, err := executeWindows(context.Background(), store, windows, "o1", day(2024, 1, 1))
	require.NoError(t, err)
	require.Len(t, grids, len(windows))
	require.Len(t, store.windows(), len(windows))

	// Results are positioned by originating window, not completion order.
	for i, grid := range grids {
		require.Len(t, grid, 1)
		require.Len(t, grid[0].Days, windows[i].Days())
		require.Equal(t, windows[i].Start, grid[0].Days[0].Date)
	}
}

func TestExecuteWindowsFailClosed(t *testing.T) {
	boom := errors.New("warehouse timeout")
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			// Only the middle window fails; the whole request must fail.
			if w.Start.Equal(day(2024, 2, 1)) {
				return nil, boom
			}
			return &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1"}},
			}, nil
		},
	}

	windows := Chunk(DateRange{Start: day(2024, 1, 1), End: day(2024, 3, 30)})
	grids, err := executeWindows(context.Background(), store, windows, "", day(2024, 1, 1))

	require.Nil(t, grids)
	require.True(t, errors.Is(err, ErrPartialFetch))
	require.True(t, errors.Is(err, boom))
}

func TestExecuteWindowsKeepsClassifiedStoreErrors(t *testing.T) {
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			return nil, ErrStoreAccessDenied
		},
	}

	windows := Chunk(DateRange{Start: day(2024, 1, 1), End: day(2024, 3, 30)})
	_, err := executeWindows(context.Background(), store, windows, "", day(2024, 1, 1))

	require.True(t, errors.Is(err, ErrStoreAccessDenied))
	require.False(t, errors.Is(err, ErrPartialFetch))
}
