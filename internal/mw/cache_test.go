package mw

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"
)

func newCachedRouter(ttl time.Duration) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)

	hits := 0
	r := gin.New()
	store := cache.New(ttl, 10*time.Minute)
	r.GET("/offices", Cache(store, ttl), func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "hit "+strconv.Itoa(hits))
	})
	r.GET("/broken", Cache(store, ttl), func(c *gin.Context) {
		hits++
		c.String(http.StatusInternalServerError, "boom")
	})
	return r, &hits
}

func TestCacheServesSecondGetFromStore(t *testing.T) {
	r, hits := newCachedRouter(time.Minute)

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/offices", nil))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/offices", nil))

	require.Equal(t, 1, *hits)
	require.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestCacheSkipsErrorResponses(t *testing.T) {
	r, hits := newCachedRouter(time.Minute)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)
	}
	require.Equal(t, 2, *hits)
}
