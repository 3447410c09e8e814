package suite

import (
	"net/http"
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "SUITE_NOT_FOUND", "suite not found")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "INVALID_SUITE_STATUS", "invalid suite status label")
)

// TypeTeamRoom is the suite type the availability engine operates on.
const TypeTeamRoom = "team_room"

// Suite is a bookable private suite drawn on an office floorplan.
type Suite struct {
	ID        string
	OfficeID  string
	Name      string
	SuiteType string
	// Base is the persistent state label maintained by the daily extraction,
	// independent of scheduling data.
	Base      availability.BaseStatus
	// ShapeID references the suite's polygon in the office floorplan SVG.
	ShapeID   string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing suites.
type Filter struct {
	OfficeID  string
	SuiteType string
	Base      string
	Page      int
	PageSize  int
}

// validBaseStatuses is the closed label set accepted on writes.
var validBaseStatuses = map[availability.BaseStatus]bool{
	availability.BaseAvailable:     true,
	availability.BaseOccupied:      true,
	availability.BaseReserved:      true,
	availability.BaseAvailableSoon: true,
	availability.BaseUnavailable:   true,
}
