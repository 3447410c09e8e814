package availability

import (
	"net/http"
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
)

var (
	ErrInvalidRange = apperror.New(http.StatusBadRequest, "INVALID_RANGE",
		"invalid date range: dates must be ISO (YYYY-MM-DD) and start must not be after end")
	ErrRangeTooLarge = apperror.New(http.StatusBadRequest, "RANGE_TOO_LARGE",
		"requested range exceeds the maximum of 366 days; narrow the range")
	ErrPartialFetch = apperror.New(http.StatusInternalServerError, "PARTIAL_FETCH_FAILURE",
		"one or more occupancy windows could not be resolved")
	ErrStoreAccessDenied = apperror.New(http.StatusForbidden, "STORE_ACCESS_DENIED",
		"access to the occupancy store was denied; check warehouse permissions")
	ErrStoreLocalityMismatch = apperror.New(http.StatusBadRequest, "STORE_LOCALITY_MISMATCH",
		"occupancy store not found in the configured region; check warehouse routing")
)

// Status is the free/occupied classification of a suite, either for a single
// day or merged over a whole requested range.
type Status string

const (
	StatusFree     Status = "free"
	StatusOccupied Status = "occupied"
)

// DayStatus is the classification of one suite for one calendar day.
type DayStatus struct {
	Date   time.Time
	Status Status
}

// SuiteDays is the resolved day grid of one suite over one window: exactly
// one DayStatus per calendar day of the window, in chronological order.
type SuiteDays struct {
	SuiteID  string
	Name     string
	OfficeID string
	Base     BaseStatus
	Days     []DayStatus
}

// Verdict is the merged range-level result for one suite.
type Verdict struct {
	SuiteID  string
	Name     string
	OfficeID string
	Base     BaseStatus
	Status   Status
}

// SuiteRef identifies a suite in the warehouse reference set for an as-of
// date, together with its persistent base state.
type SuiteRef struct {
	SuiteID  string
	Name     string
	OfficeID string
	Base     BaseStatus
}

// Interval is a raw occupancy interval. Both bounds are inclusive calendar
// days; open-ended intervals arrive normalized to the far-future sentinel.
type Interval struct {
	SuiteID string
	Start   time.Time
	End     time.Time
}

// Covers reports whether the interval covers the given day.
func (iv Interval) Covers(day time.Time) bool {
	return !day.Before(iv.Start) && !day.After(iv.End)
}

// WindowData is everything the store returns for one bounded window: the
// suite reference set as of the snapshot date plus the occupancy intervals
// overlapping the window.
type WindowData struct {
	Suites    []SuiteRef
	Intervals []Interval
}
