package availability

// BaseStatus is a suite's persistent state label, maintained by the daily
// extraction independently of any scheduling data.
type BaseStatus string

const (
	BaseAvailable     BaseStatus = "available"
	BaseOccupied      BaseStatus = "occupied"
	BaseReserved      BaseStatus = "reserved"
	BaseAvailableSoon BaseStatus = "available_soon"

	// BaseUnavailable marks a suite permanently withdrawn from service.
	// It dominates every range verdict.
	BaseUnavailable BaseStatus = "unavailable"
)

// Effective resolves the status shown to callers from a suite's persistent
// base state and, when a date or range was selected, its merged range
// verdict.
//
// Precedence:
//  1. A permanently withdrawn suite is always occupied.
//  2. With a range selected and a verdict present, the verdict wins.
//  3. With a range selected but no verdict for this suite, fail safe to
//     occupied rather than advertise availability on missing data.
//  4. With no range selected, fall back to the static base-state mapping.
//
// Pure function; callable per suite per render.
func Effective(base BaseStatus, rangeSelected bool, verdict *Status) Status {
	if base == BaseUnavailable {
		return StatusOccupied
	}

	if rangeSelected {
		if verdict != nil {
			return *verdict
		}
		return StatusOccupied
	}

	if base == BaseAvailable {
		return StatusFree
	}
	return StatusOccupied
}
