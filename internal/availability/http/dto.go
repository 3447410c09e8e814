package http

import (
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
)

// GetAvailabilityRequest defines the query parameters for the availability
// endpoint. End defaults to Start when omitted (single-day query).
type GetAvailabilityRequest struct {
	Start    string `form:"start" binding:"required"`
	End      string `form:"end"`
	OfficeID string `form:"office_id" binding:"omitempty,uuid"`
}

type RangeDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayDTO struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// ResourceDTO keeps the published wire keys (resource_id) even though the
// backing type is a suite.
type ResourceDTO struct {
	ResourceID string   `json:"resource_id"`
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Days       []DayDTO `json:"days,omitempty"`
}

type AvailabilityResponse struct {
	Range     RangeDTO      `json:"range"`
	OfficeID  string        `json:"office_id,omitempty"`
	Resources []ResourceDTO `json:"resources"`
}

// NewAvailabilityResponse maps a resolved result onto the wire shape.
func NewAvailabilityResponse(res *availability.Result) AvailabilityResponse {
	resources := make([]ResourceDTO, 0, len(res.Suites))
	for _, s := range res.Suites {
		dto := ResourceDTO{
			ResourceID: s.SuiteID,
			Name:       s.Name,
			Status:     string(s.Status),
		}
		for _, d := range s.Days {
			dto.Days = append(dto.Days, DayDTO{
				Date:   d.Date.Format(availability.ISODate),
				Status: string(d.Status),
			})
		}
		resources = append(resources, dto)
	}

	return AvailabilityResponse{
		Range: RangeDTO{
			Start: res.Range.Start.Format(availability.ISODate),
			End:   res.Range.End.Format(availability.ISODate),
		},
		OfficeID:  res.OfficeID,
		Resources: resources,
	}
}
