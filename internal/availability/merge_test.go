package availability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func suiteWindow(id string, statuses ...Status) SuiteDays {
	days := make([]DayStatus, len(statuses))
	for i, st := range statuses {
		days[i] = DayStatus{Date: day(2024, 1, 1+i), Status: st}
	}
	return SuiteDays{SuiteID: id, Name: "Suite " + id, OfficeID: "o1", Days: days}
}

func verdictMap(verdicts []Verdict) map[string]Status {
	m := make(map[string]Status, len(verdicts))
	for _, v := range verdicts {
		m[v.SuiteID] = v.Status
	}
	return m
}

func TestMergeMonotonic(t *testing.T) {
	tests := []struct {
		name    string
		windows [][]SuiteDays
		want    Status
	}{
		{
			name: "all windows free merges free",
			windows: [][]SuiteDays{
				{suiteWindow("s1", StatusFree, StatusFree)},
				{suiteWindow("s1", StatusFree)},
			},
			want: StatusFree,
		},
		{
			name: "free occupied free merges occupied",
			windows: [][]SuiteDays{
				{suiteWindow("s1", StatusFree)},
				{suiteWindow("s1", StatusOccupied)},
				{suiteWindow("s1", StatusFree)},
			},
			want: StatusOccupied,
		},
		{
			name: "single occupied day dominates an otherwise free window",
			windows: [][]SuiteDays{
				{suiteWindow("s1", StatusFree, StatusOccupied, StatusFree)},
			},
			want: StatusOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdicts := Merge(tt.windows)
			require.Len(t, verdicts, 1)
			require.Equal(t, tt.want, verdicts[0].Status)
		})
	}
}

func TestMergeOrderIndependence(t *testing.T) {
	a := []SuiteDays{
		suiteWindow("s1", StatusFree),
		suiteWindow("s2", StatusOccupied),
	}
	b := []SuiteDays{
		suiteWindow("s1", StatusOccupied),
		suiteWindow("s2", StatusFree),
	}
	c := []SuiteDays{
		suiteWindow("s1", StatusFree),
		suiteWindow("s3", StatusFree),
	}

	forward := verdictMap(Merge([][]SuiteDays{a, b, c}))
	shuffled := verdictMap(Merge([][]SuiteDays{c, a, b}))
	reversed := verdictMap(Merge([][]SuiteDays{c, b, a}))

	require.Equal(t, forward, shuffled)
	require.Equal(t, forward, reversed)
	require.Equal(t, StatusOccupied, forward["s1"])
	require.Equal(t, StatusOccupied, forward["s2"])
	require.Equal(t, StatusFree, forward["s3"])
}

func TestMergeSkipsEmptyWindows(t *testing.T) {
	// A window with zero day entries for a suite contributes nothing; it
	// must not drag an occupied suite back toward free.
	windows := [][]SuiteDays{
		{suiteWindow("s1", StatusOccupied)},
		{{SuiteID: "s1", Name: "Suite s1", OfficeID: "o1", Days: nil}},
	}

	verdicts := Merge(windows)
	require.Len(t, verdicts, 1)
	require.Equal(t, StatusOccupied, verdicts[0].Status)
}

func TestMergeSuitePresentInOneWindowOnly(t *testing.T) {
	windows := [][]SuiteDays{
		{suiteWindow("s1", StatusFree)},
		{suiteWindow("s1", StatusFree), suiteWindow("s2", StatusFree)},
	}

	m := verdictMap(Merge(windows))
	require.Len(t, m, 2)
	require.Equal(t, StatusFree, m["s2"])
}
