package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/auth"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/floorplan"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/apperror"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/request"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/response"
)

type Handler struct {
	service floorplan.Service
}

func NewHandler(service floorplan.Service) *Handler {
	return &Handler{service: service}
}

// Upload stores a new floorplan file for an office floor. Admin only.
func (h *Handler) Upload(c *gin.Context) {
	var req UploadFloorplanRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_BODY", "invalid upload parameters"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "MISSING_FILE", "missing floorplan file"))
		return
	}

	f, err := h.service.Upload(c.Request.Context(), header, floorplan.UploadRequest{
		OfficeID: req.OfficeID,
		Floor:    req.Floor,
		UserID:   auth.GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewFloorplanResponse(f))
}

func (h *Handler) List(c *gin.Context) {
	var req ListFloorplansRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_QUERY", "office_id is required"))
		return
	}

	plans, err := h.service.ListByOffice(c.Request.Context(), req.OfficeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FloorplanResponse, len(plans))
	for i, f := range plans {
		items[i] = NewFloorplanResponse(f)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_ID", "invalid floorplan id"))
		return
	}

	f, err := h.service.Get(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewFloorplanResponse(f))
}

// Download streams the original floorplan file.
func (h *Handler) Download(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_ID", "invalid floorplan id"))
		return
	}

	rc, f, err := h.service.Download(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, rc, nil)
}

// DownloadPreview streams the raster preview, when one exists.
func (h *Handler) DownloadPreview(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_ID", "invalid floorplan id"))
		return
	}

	rc, _, err := h.service.DownloadPreview(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, "image/jpeg", rc, nil)
}

// Delete removes a floorplan and its stored files. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "INVALID_ID", "invalid floorplan id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
