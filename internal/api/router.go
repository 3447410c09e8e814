package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/auth"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	availabilityHttp "github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability/http"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/floorplan"
	floorplanHttp "github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/floorplan/http"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/logging"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/mw"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/office"
	officeHttp "github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/office/http"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/suite"
	suiteHttp "github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/suite/http"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/user"
	userHttp "github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	Logger *zap.Logger

	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration

	UserService         user.Service
	OfficeService       office.Service
	SuiteService        suite.Service
	FloorplanService    floorplan.Service
	AvailabilityService availability.Service
	JWTManager          *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth, rate
// limiting) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - RequestLogger: structured request logs via zap.
	// - Recovery: captures panics to prevent server crashes and returns a 500 error.
	// - RateLimit: per-client token bucket.
	r.Use(logging.RequestLogger(cfg.Logger), gin.Recovery())
	r.Use(mw.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: validates that the request carries a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: further checks that the staff account is an admin.
	adminMiddleware := RequireAdmin(cfg.UserService)
	// cacheMiddleware: response cache for static lookup endpoints only.
	// Availability results are recomputed on every request.
	cacheStore := cache.New(cfg.CacheTTL, 10*time.Minute)
	cacheMiddleware := mw.Cache(cacheStore, cfg.CacheTTL)

	// Initialize HTTP handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	officeHandler := officeHttp.NewHandler(cfg.OfficeService)
	suiteHandler := suiteHttp.NewHandler(cfg.SuiteService)
	floorplanHandler := floorplanHttp.NewHandler(cfg.FloorplanService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		officeHttp.RegisterRoutes(v1, officeHandler, authMiddleware, cacheMiddleware)
		suiteHttp.RegisterRoutes(v1, suiteHandler, authMiddleware, adminMiddleware)
		floorplanHttp.RegisterRoutes(v1, floorplanHandler, authMiddleware, adminMiddleware, cacheMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, authMiddleware)
	}

	return r
}
