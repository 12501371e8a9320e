package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/newsdesk/news-backend/internal/api/handler"
	"github.com/newsdesk/news-backend/internal/api/middleware"
	"github.com/newsdesk/news-backend/internal/core/domain"
	"github.com/newsdesk/news-backend/internal/core/service"
	"github.com/newsdesk/news-backend/internal/infrastructure/config"
	"github.com/newsdesk/news-backend/internal/infrastructure/db/postgres"
	redisinfra "github.com/newsdesk/news-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle and its readiness check are then skipped.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *sql.DB, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("news"))

	display, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.DisplayTimezone).Msg("unknown display timezone, falling back to UTC")
		display = time.UTC
	}

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	newsRepo := postgres.NewNewsRepository(db)

	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisinfra.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)
	}

	authService := service.NewAuthService(userRepo, throttle, service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	}, log)
	newsService := service.NewNewsService(newsRepo, display, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	newsHandler := handler.NewNewsHandler(newsService)
	userHandler := handler.NewUserHandler(userService)

	authMW := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	anyRole := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/Login", authHandler.Login)

	login := apiGroup.Group("/Login", authMW)
	login.GET("/GetUsername", authHandler.Username)
	login.GET("/GetRole", authHandler.Role)
	login.GET("/GetId", authHandler.ID)

	news := apiGroup.Group("/News", authMW, anyRole)
	news.GET("", newsHandler.List)
	news.GET("/:id", newsHandler.Get)
	news.POST("", newsHandler.Create)
	news.PATCH("/:id", newsHandler.Update)
	news.DELETE("/:id", newsHandler.Delete)

	user := apiGroup.Group("/User", authMW, anyRole)
	user.PATCH("/password-update", userHandler.UpdatePassword)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
