package availability

import (
	"context"
	"time"
)

// Query is the inbound availability request. End defaults to Start when
// empty; OfficeID optionally scopes the reference set.
type Query struct {
	Start    string
	End      string
	OfficeID string
}

// SuiteStatus is one suite's effective result for the requested range. Days
// is populated only on the single-window path, for calendar rendering.
type SuiteStatus struct {
	SuiteID string
	Name    string
	Status  Status
	Days    []DayStatus
}

// Result is the resolved availability for the whole requested range.
type Result struct {
	Range    DateRange
	OfficeID string
	Suites   []SuiteStatus
}

type Service interface {
	// Resolve computes one effective status per suite for the requested
	// range, recomputing from the current warehouse snapshot on every call.
	Resolve(ctx context.Context, q Query) (*Result, error)
}

type service struct {
	store Store
	loc   *time.Location
	now   func() time.Time
}

// NewService creates the availability service. loc is the single fixed
// deployment zone used for bound normalization and the as-of date.
func NewService(store Store, loc *time.Location) Service {
	return &service{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

func (s *service) Resolve(ctx context.Context, q Query) (*Result, error) {
	r, err := ParseRange(q.Start, q.End, s.loc)
	if err != nil {
		return nil, err
	}

	asOf := s.asOfDate()
	windows := Chunk(r)

	if len(windows) == 1 {
		return s.resolveSingle(ctx, r, q.OfficeID, asOf)
	}
	return s.resolveChunked(ctx, r, windows, q.OfficeID, asOf)
}

// resolveSingle handles ranges within the window cap: one store fetch, and
// the per-day grid is kept in the response for calendar rendering.
func (s *service) resolveSingle(ctx context.Context, window DateRange, officeID string, asOf time.Time) (*Result, error) {
	data, err := s.store.FetchWindow(ctx, window, officeID, asOf)
	if err != nil {
		return nil, err
	}

	grid := ResolveGrid(window, data)
	suites := make([]SuiteStatus, 0, len(grid))
	for _, sd := range grid {
		verdict := windowVerdict(sd.Days)
		suites = append(suites, SuiteStatus{
			SuiteID: sd.SuiteID,
			Name:    sd.Name,
			Status:  Effective(sd.Base, true, &verdict),
			Days:    sd.Days,
		})
	}

	return &Result{Range: window, OfficeID: officeID, Suites: suites}, nil
}

// resolveChunked fans out one grid resolution per window and merges the
// results into a whole-range verdict per suite. Only the merged status is
// returned; per-day grids are meaningless across the chunk boundary.
func (s *service) resolveChunked(ctx context.Context, r DateRange, windows []DateRange, officeID string, asOf time.Time) (*Result, error) {
	grids, err := executeWindows(ctx, s.store, windows, officeID, asOf)
	if err != nil {
		return nil, err
	}

	verdicts := Merge(grids)
	suites := make([]SuiteStatus, 0, len(verdicts))
	for _, v := range verdicts {
		suites = append(suites, SuiteStatus{
			SuiteID: v.SuiteID,
			Name:    v.Name,
			Status:  Effective(v.Base, true, &v.Status),
		})
	}

	return &Result{Range: r, OfficeID: officeID, Suites: suites}, nil
}

// asOfDate is "today" at call time in the deployment zone, matching the
// daily extraction snapshot key.
func (s *service) asOfDate() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}
