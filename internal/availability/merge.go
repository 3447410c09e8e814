package availability

// Merge combines per-window grids into one Verdict per suite observed in any
// window.
//
// The rule is occupied-dominant and commutative in window order: a suite's
// window-local verdict is free iff every day of that window is free, and a
// single occupied window marks the suite occupied for the whole range. Once
// occupied, a suite never flips back to free within the same merge. A window
// in which a suite has zero day entries contributes nothing for that suite;
// missing data is not free.
func Merge(results [][]SuiteDays) []Verdict {
	merged := make(map[string]*Verdict)
	var order []string

	for _, grid := range results {
		for _, sd := range grid {
			if len(sd.Days) == 0 {
				continue
			}

			local := windowVerdict(sd.Days)

			v, seen := merged[sd.SuiteID]
			if !seen {
				merged[sd.SuiteID] = &Verdict{
					SuiteID:  sd.SuiteID,
					Name:     sd.Name,
					OfficeID: sd.OfficeID,
					Base:     sd.Base,
					Status:   local,
				}
				order = append(order, sd.SuiteID)
				continue
			}
			if local == StatusOccupied {
				v.Status = StatusOccupied
			}
		}
	}

	verdicts := make([]Verdict, 0, len(order))
	for _, id := range order {
		verdicts = append(verdicts, *merged[id])
	}
	return verdicts
}

// windowVerdict collapses one suite's days within a single window.
func windowVerdict(days []DayStatus) Status {
	for _, d := range days {
		if d.Status == StatusOccupied {
			return StatusOccupied
		}
	}
	return StatusFree
}
