package office

import (
	"net/http"
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "OFFICE_NOT_FOUND", "office not found")
)

// Office is a building the dashboard shows floorplans for; every suite and
// every availability query is scoped to one.
type Office struct {
	ID        string
	Code      string // Short office code used in floorplan filenames (e.g. "KLS")
	Name      string
	Address   string
	CreatedAt time.Time
}
