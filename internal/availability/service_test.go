package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(store Store) *service {
	svc := NewService(store, time.UTC).(*service)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestResolveSingleDayOccupied(t *testing.T) {
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			return &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1", Base: BaseAvailable}},
				Intervals: []Interval{
					{SuiteID: "s1", Start: day(2024, 1, 1), End: day(2024, 1, 31)},
				},
			}, nil
		},
	}

	res, err := newTestService(store).Resolve(context.Background(), Query{Start: "2024-01-15"})
	require.NoError(t, err)
	require.Len(t, res.Suites, 1)
	require.Equal(t, StatusOccupied, res.Suites[0].Status)
	require.Len(t, res.Suites[0].Days, 1)
	require.Equal(t, StatusOccupied, res.Suites[0].Days[0].Status)
}

func TestResolveShortRangeNoIntervals(t *testing.T) {
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			return &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1", Base: BaseAvailable}},
			}, nil
		},
	}

	res, err := newTestService(store).Resolve(context.Background(), Query{
		Start: "2024-01-01",
		End:   "2024-01-05",
	})
	require.NoError(t, err)
	require.Len(t, res.Suites, 1)
	require.Equal(t, StatusFree, res.Suites[0].Status)

	// Single-window path keeps the per-day grid for calendar rendering.
	require.Len(t, res.Suites[0].Days, 5)
	for _, d := range res.Suites[0].Days {
		require.Equal(t, StatusFree, d.Status)
	}
}

func TestResolveChunkedOccupiedInMiddleWindow(t *testing.T) {
	// 90 days, three windows; the suite is occupied only inside window 2.
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			data := &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1", Base: BaseAvailable}},
			}
			occupied := DateRange{Start: day(2024, 2, 10), End: day(2024, 2, 12)}
			if w.Contains(occupied.Start) {
				data.Intervals = []Interval{{SuiteID: "s1", Start: occupied.Start, End: occupied.End}}
			}
			return data, nil
		},
	}

	res, err := newTestService(store).Resolve(context.Background(), Query{
		Start: "2024-01-01",
		End:   "2024-03-30",
	})
	require.NoError(t, err)
	require.Len(t, store.windows(), 3)
	require.Len(t, res.Suites, 1)
	require.Equal(t, StatusOccupied, res.Suites[0].Status)

	// Chunked path returns only the merged whole-range status.
	require.Nil(t, res.Suites[0].Days)
}

func TestResolvePermanentlyWithdrawnSuite(t *testing.T) {
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			return &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1", Base: BaseUnavailable}},
			}, nil
		},
	}

	// Every day is free, but the permanent marker dominates.
	res, err := newTestService(store).Resolve(context.Background(), Query{
		Start: "2024-01-01",
		End:   "2024-01-05",
	})
	require.NoError(t, err)
	require.Equal(t, StatusOccupied, res.Suites[0].Status)
}

func TestResolveValidationErrors(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.Resolve(context.Background(), Query{Start: "2024-02-10", End: "2024-02-01"})
	require.True(t, errors.Is(err, ErrInvalidRange))

	_, err = svc.Resolve(context.Background(), Query{Start: "2024-01-01", End: "2025-02-04"})
	require.True(t, errors.Is(err, ErrRangeTooLarge))

	// Validation failures must not reach the store.
	require.Empty(t, svc.store.(*fakeStore).windows())
}

func TestResolveChunkedFailClosed(t *testing.T) {
	store := &fakeStore{
		fetch: func(w DateRange, _ string) (*WindowData, error) {
			if w.Start.Equal(day(2024, 2, 1)) {
				return nil, errors.New("transient network error")
			}
			return &WindowData{
				Suites: []SuiteRef{{SuiteID: "s1", Name: "Suite 101", OfficeID: "o1", Base: BaseAvailable}},
			}, nil
		},
	}

	res, err := newTestService(store).Resolve(context.Background(), Query{
		Start: "2024-01-01",
		End:   "2024-03-30",
	})
	require.Nil(t, res)
	require.True(t, errors.Is(err, ErrPartialFetch))
}
