package availability

// ResolveGrid computes the day-by-day free/occupied grid for every suite in
// the window's reference set.
//
// Each suite yields exactly one DayStatus per calendar day of the window: a
// day is occupied if at least one interval for that suite covers it, free
// otherwise. A suite with zero intervals is free for every day. Suites
// absent from the reference set are never fabricated.
func ResolveGrid(window DateRange, data *WindowData) []SuiteDays {
	byID := make(map[string][]Interval, len(data.Suites))
	for _, iv := range data.Intervals {
		byID[iv.SuiteID] = append(byID[iv.SuiteID], iv)
	}

	dates := window.Dates()
	grid := make([]SuiteDays, 0, len(data.Suites))

	for _, ref := range data.Suites {
		intervals := byID[ref.SuiteID]
		days := make([]DayStatus, len(dates))
		for i, d := range dates {
			status := StatusFree
			for _, iv := range intervals {
				if iv.Covers(d) {
					status = StatusOccupied
					break
				}
			}
			days[i] = DayStatus{Date: d, Status: status}
		}
		grid = append(grid, SuiteDays{
			SuiteID:  ref.SuiteID,
			Name:     ref.Name,
			OfficeID: ref.OfficeID,
			Base:     ref.Base,
			Days:     days,
		})
	}

	return grid
}
