package availability

import (
	"time"
)

const (
	// MaxWindowDays is the per-query day ceiling imposed by the warehouse;
	// a single store fetch never spans more days than this.
	MaxWindowDays = 31

	// MaxQueryDays is the absolute ceiling for one availability request,
	// sized to tolerate leap years with inclusive-end arithmetic.
	MaxQueryDays = 366

	// ISODate is the wire format for calendar dates.
	ISODate = "2006-01-02"
)

// openEndedSentinel marks "occupied forever" intervals after normalization.
var openEndedSentinel = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// DateRange is an inclusive pair of calendar days in the deployment zone.
// A range spanning at most MaxWindowDays is also a valid store window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseRange parses and validates inclusive ISO date bounds in the given
// fixed deployment zone. An empty end defaults to start (single-day query).
// Returns ErrInvalidRange on malformed or inverted bounds and
// ErrRangeTooLarge when the span exceeds MaxQueryDays.
func ParseRange(start, end string, loc *time.Location) (DateRange, error) {
	s, err := time.ParseInLocation(ISODate, start, loc)
	if err != nil {
		return DateRange{}, ErrInvalidRange.WithCause(err)
	}

	if end == "" {
		end = start
	}
	e, err := time.ParseInLocation(ISODate, end, loc)
	if err != nil {
		return DateRange{}, ErrInvalidRange.WithCause(err)
	}

	if e.Before(s) {
		return DateRange{}, ErrInvalidRange
	}

	r := DateRange{Start: s, End: e}
	if r.Days() > MaxQueryDays {
		return DateRange{}, ErrRangeTooLarge
	}
	return r, nil
}

// Days returns the inclusive day count of the range. Both bounds are
// re-anchored to UTC midnight first so the count stays calendar-exact in
// zones where DST makes local days 23 or 25 hours long.
func (r DateRange) Days() int {
	s := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// Dates returns every calendar day in the range, in chronological order.
func (r DateRange) Dates() []time.Time {
	days := make([]time.Time, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Chunk splits the range into an ordered, contiguous, non-overlapping
// sequence of windows of at most MaxWindowDays each, whose union is exactly
// the input range. A range within the window cap yields itself unchanged.
func Chunk(r DateRange) []DateRange {
	if r.Days() <= MaxWindowDays {
		return []DateRange{r}
	}

	var windows []DateRange
	for cursor := r.Start; !cursor.After(r.End); {
		end := cursor.AddDate(0, 0, MaxWindowDays-1)
		if end.After(r.End) {
			end = r.End
		}
		windows = append(windows, DateRange{Start: cursor, End: end})
		cursor = end.AddDate(0, 0, 1)
	}
	return windows
}
