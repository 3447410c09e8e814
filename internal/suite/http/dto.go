package http

import (
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/request"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/suite"
)

// ListSuitesRequest defines query parameters for listing suites. This is the
// closed set of recognized filters; unknown query keys are ignored rather
// than merged into the query.
type ListSuitesRequest struct {
	request.ListParams
	OfficeID  string `form:"office_id" binding:"omitempty,uuid"`
	SuiteType string `form:"suite_type" binding:"omitempty,oneof=team_room hot_desk event_space"`
	Status    string `form:"status" binding:"omitempty,oneof=available occupied reserved available_soon unavailable"`
}

type UpdateSuiteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied reserved available_soon unavailable"`
}

type SuiteResponse struct {
	ID       string `json:"id"`
	OfficeID string `json:"office_id"`
	Name     string `json:"name"`
	Type     string `json:"suite_type"`
	// BaseStatus is the raw persistent label; Status is the effective
	// free/occupied value rendered on the floorplan when no date range is
	// selected.
	BaseStatus string `json:"base_status"`
	Status     string `json:"status"`
	ShapeID    string `json:"shape_id"`
	Capacity   int    `json:"capacity"`
}

func NewSuiteResponse(s *suite.Suite) SuiteResponse {
	return SuiteResponse{
		ID:         s.ID,
		OfficeID:   s.OfficeID,
		Name:       s.Name,
		Type:       s.SuiteType,
		BaseStatus: string(s.Base),
		Status:     string(availability.Effective(s.Base, false, nil)),
		ShapeID:    s.ShapeID,
		Capacity:   s.Capacity,
	}
}
