package router

import (
	"net/http"
	"slices"

	"swapi/config"
	"swapi/internal/domain"
	"swapi/internal/handler"
	"swapi/internal/logging"
	"swapi/internal/metrics"
	"swapi/internal/middleware"
	"swapi/internal/repository"
	"swapi/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRateLimiter builds the per-IP limiter described by cfg, or returns nil
// when rate limiting is disabled. The caller owns it and must Close it.
func NewRateLimiter(cfg *config.SecurityConfig) *middleware.InMemoryRateLimiter {
	if cfg.RateLimitRequests <= 0 {
		return nil
	}
	return middleware.NewInMemoryRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
}

// Setup builds the engine. limiter may be nil to serve without rate limiting.
func Setup(cfg *config.Config, db *gorm.DB, limiter *middleware.InMemoryRateLimiter) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// Recovery runs inside the logger and metrics so a panic is recorded as a 500.
	r.Use(middleware.RequestID(), logging.GinLogger(), middleware.Metrics(), middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg.Security.CORSOrigins)))
	if limiter != nil {
		r.Use(middleware.RateLimit(limiter))
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msj": "not found"})
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Services
	favSvc := service.NewFavoriteService(favRepo, userRepo, characterRepo, planetRepo, vehicleRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userRepo)
	catalogHandler := handler.NewCatalogHandler(characterRepo, planetRepo, vehicleRepo)
	favoriteHandler := handler.NewFavoriteHandler(favSvc)
	systemHandler := handler.NewSystemHandler(db)

	r.GET("/", handler.Sitemap(r))
	r.GET("/healthz", systemHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/user", userHandler.Hello)
	r.GET("/users", userHandler.List)
	r.GET("/users/favorites", favoriteHandler.List)

	r.GET("/people", catalogHandler.ListPeople)
	r.GET("/people/:id", catalogHandler.GetPerson)
	r.GET("/planets", catalogHandler.ListPlanets)
	r.GET("/planets/:id", catalogHandler.GetPlanet)
	r.GET("/vehicles", catalogHandler.ListVehicles)
	r.GET("/vehicles/:id", catalogHandler.GetVehicle)

	fav := r.Group("/favorite")
	for _, kind := range domain.ReferenceKinds {
		fav.POST("/"+string(kind)+"/:id", favoriteHandler.Create(kind))
		fav.DELETE("/"+string(kind)+"/:id", favoriteHandler.Delete(kind))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}
