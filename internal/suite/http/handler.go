package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/request"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/response"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/suite"
)

type Handler struct {
	service suite.Service
}

func NewHandler(service suite.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListSuitesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_QUERY", "invalid query parameters"))
		return
	}

	suites, total, err := h.service.List(c.Request.Context(), suite.Filter{
		OfficeID:  req.OfficeID,
		SuiteType: req.SuiteType,
		Base:      req.Status,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SuiteResponse, len(suites))
	for i, s := range suites {
		items[i] = NewSuiteResponse(s)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_ID", "invalid suite id"))
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuiteResponse(s))
}

// UpdateStatus sets a suite's persistent base state label. Admin only.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_ID", "invalid suite id"))
		return
	}

	var body UpdateSuiteStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_BODY", "invalid request body"))
		return
	}

	s, err := h.service.UpdateBase(c.Request.Context(), uri.ID, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuiteResponse(s))
}
