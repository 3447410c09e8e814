package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// Get resolves free/occupied statuses for every team-room suite over the
// requested date range.
func (h *Handler) Get(c *gin.Context) {
	var req GetAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), availability.Query{
		Start:    req.Start,
		End:      req.End,
		OfficeID: req.OfficeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(res))
}
