package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/response"
)

type stubService struct {
	called bool
	res    *availability.Result
	err    error
}

func (s *stubService) Resolve(ctx context.Context, q availability.Query) (*availability.Result, error) {
	s.called = true
	return s.res, s.err
}

func newAvailabilityRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/availability", NewHandler(svc).Get)
	return r
}

func TestGetRejectsMalformedOfficeIDWithoutResolving(t *testing.T) {
	svc := &stubService{}
	r := newAvailabilityRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/availability?start=2024-01-01&office_id=not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_QUERY", body.Code)
	require.False(t, svc.called)
}

func TestGetKeepsRangeCodeForDateErrors(t *testing.T) {
	svc := &stubService{err: availability.ErrInvalidRange}
	r := newAvailabilityRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/availability?start=2024-02-10&end=2024-02-01", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_RANGE", body.Code)
	require.True(t, svc.called)
}
