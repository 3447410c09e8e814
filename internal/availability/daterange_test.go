package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantDays  int
		wantErr   error
	}{
		{
			name:     "valid range",
			start:    "2024-01-01",
			end:      "2024-01-05",
			wantDays: 5,
		},
		{
			name:     "end defaults to start",
			start:    "2024-01-15",
			end:      "",
			wantDays: 1,
		},
		{
			name:     "leap year full span is allowed",
			start:    "2024-01-01",
			end:      "2024-12-31",
			wantDays: 366,
		},
		{
			name:    "inverted bounds",
			start:   "2024-02-10",
			end:     "2024-02-01",
			wantErr: ErrInvalidRange,
		},
		{
			name:    "malformed start",
			start:   "01/02/2024",
			end:     "2024-02-10",
			wantErr: ErrInvalidRange,
		},
		{
			name:    "malformed end",
			start:   "2024-02-01",
			end:     "soon",
			wantErr: ErrInvalidRange,
		},
		{
			name:    "400 day span exceeds ceiling",
			start:   "2024-01-01",
			end:     "2025-02-04",
			wantErr: ErrRangeTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.start, tt.end, time.UTC)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDays, r.Days())
		})
	}
}

func TestDaysAcrossDSTTransitions(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is only 23 hours long in New York; the count must stay
	// calendar-exact so this 32-day range is still split for the store.
	r, err := ParseRange("2024-03-01", "2024-04-01", ny)
	require.NoError(t, err)
	require.Equal(t, 32, r.Days())

	windows := Chunk(r)
	require.Len(t, windows, 2)
	for _, w := range windows {
		require.LessOrEqual(t, w.Days(), MaxWindowDays)
	}

	// 2024-11-03 is 25 hours long; no overcount on the way back either.
	r, err = ParseRange("2024-11-01", "2024-11-05", ny)
	require.NoError(t, err)
	require.Equal(t, 5, r.Days())
	require.Len(t, r.Dates(), 5)

	// A 367-day span whose DST crossings net out to a missing hour must
	// still trip the ceiling.
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	_, err = ParseRange("2024-10-06", "2025-10-07", sydney)
	require.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestDates(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	dates := r.Dates()
	require.Len(t, dates, 4)
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), dates[2]) // leap day
	require.Equal(t, r.End, dates[3])
}

func TestChunk(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		r           DateRange
		wantWindows int
	}{
		{
			name:        "single day",
			r:           DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 1)},
			wantWindows: 1,
		},
		{
			name:        "exactly the window cap",
			r:           DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 31)},
			wantWindows: 1,
		},
		{
			name:        "one day over the cap",
			r:           DateRange{Start: day(2024, 1, 1), End: day(2024, 2, 1)},
			wantWindows: 2,
		},
		{
			name:        "90 days chunks into 3 windows",
			r:           DateRange{Start: day(2024, 1, 1), End: day(2024, 3, 30)},
			wantWindows: 3,
		},
		{
			name:        "full leap year",
			r:           DateRange{Start: day(2024, 1, 1), End: day(2024, 12, 31)},
			wantWindows: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := Chunk(tt.r)
			require.Len(t, windows, tt.wantWindows)

			// Union must reproduce the range exactly: first window starts at
			// range start, each window starts one day after the previous one
			// ends, the last window ends at range end.
			require.Equal(t, tt.r.Start, windows[0].Start)
			require.Equal(t, tt.r.End, windows[len(windows)-1].End)

			total := 0
			for i, w := range windows {
				require.False(t, w.End.Before(w.Start))
				require.LessOrEqual(t, w.Days(), MaxWindowDays)
				if i > 0 {
					require.Equal(t, windows[i-1].End.AddDate(0, 0, 1), w.Start)
				}
				total += w.Days()
			}
			require.Equal(t, tt.r.Days(), total)
		})
	}
}

func TestChunkShortCircuit(t *testing.T) {
	r := DateRange{
		Start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	}
	windows := Chunk(r)
	require.Len(t, windows, 1)
	require.Equal(t, r, windows[0])
}
