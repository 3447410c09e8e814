package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/api"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/auth"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/config"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/floorplan"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/office"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/storage"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/suite"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) (*Container, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	localStorage, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Office module
	officeRepo := office.NewPgxRepository(pool)
	officeService := office.NewService(officeRepo, cfg.CacheTTL)

	// Suite module
	suiteRepo := suite.NewPgxRepository(pool)
	suiteService := suite.NewService(suiteRepo, officeService)

	// Floorplan module
	floorplanRepo := floorplan.NewPgxRepository(pool)
	floorplanService := floorplan.NewService(floorplanRepo, localStorage, officeService)

	// Availability module
	availabilityStore := availability.NewPgxStore(pool, cfg.SuiteType, cfg.WarehouseQueryTimeout)
	availabilityService := availability.NewService(availabilityStore, loc)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		Logger:              logger,
		RateLimitPerSec:     cfg.RateLimitPerSec,
		RateLimitBurst:      cfg.RateLimitBurst,
		CacheTTL:            cfg.CacheTTL,
		UserService:         userService,
		OfficeService:       officeService,
		SuiteService:        suiteService,
		FloorplanService:    floorplanService,
		AvailabilityService: availabilityService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
