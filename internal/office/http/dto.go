package http

import (
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/office"
)

type OfficeResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func NewOfficeResponse(o *office.Office) OfficeResponse {
	return OfficeResponse{
		ID:      o.ID,
		Code:    o.Code,
		Name:    o.Name,
		Address: o.Address,
	}
}
