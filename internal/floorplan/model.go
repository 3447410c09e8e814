package floorplan

import (
	"net/http"
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "FLOORPLAN_NOT_FOUND", "floorplan not found")
	ErrUnsupported = apperror.New(http.StatusBadRequest, "UNSUPPORTED_FLOORPLAN_TYPE",
		"floorplan must be an SVG or raster image")
)

// Floorplan is an uploaded floorplan file for one office floor. The original
// is usually SVG (suite shapes keyed by shape_id); raster uploads get a
// bounded JPEG preview.
type Floorplan struct {
	ID          string  `json:"id"`
	OfficeID    string  `json:"office_id"`
	Floor       string  `json:"floor"`
	Filename    string  `json:"filename"`
	StoragePath string  `json:"-"` // Internal path
	PreviewPath *string `json:"-"` // Internal path
	ContentType string  `json:"content_type"`
	Size        int64   `json:"size"`
	UploadedBy  string  `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileURL returns the public URL for downloading a floorplan by its ID.
func FileURL(id string) string {
	return "/v1/floorplans/" + id + "/file"
}

// PreviewURL returns the public URL for a floorplan's raster preview.
func PreviewURL(id string) string {
	return "/v1/floorplans/" + id + "/preview"
}
