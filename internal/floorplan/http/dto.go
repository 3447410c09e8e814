package http

import (
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/floorplan"
)

type UploadFloorplanRequest struct {
	OfficeID string `form:"office_id" binding:"required,uuid"`
	Floor    string `form:"floor" binding:"required"`
}

type ListFloorplansRequest struct {
	OfficeID string `form:"office_id" binding:"required,uuid"`
}

type FloorplanResponse struct {
	ID          string    `json:"id"`
	OfficeID    string    `json:"office_id"`
	Floor       string    `json:"floor"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	PreviewURL  *string   `json:"preview_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewFloorplanResponse(f *floorplan.Floorplan) FloorplanResponse {
	resp := FloorplanResponse{
		ID:          f.ID,
		OfficeID:    f.OfficeID,
		Floor:       f.Floor,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size,
		URL:         floorplan.FileURL(f.ID),
		CreatedAt:   f.CreatedAt,
	}
	if f.PreviewPath != nil {
		u := floorplan.PreviewURL(f.ID)
		resp.PreviewURL = &u
	}
	return resp
}
