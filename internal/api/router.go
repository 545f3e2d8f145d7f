package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/aiauto/dashboard-api/docs"
	"github.com/aiauto/dashboard-api/internal/api/handler"
	"github.com/aiauto/dashboard-api/internal/api/middleware"
	"github.com/aiauto/dashboard-api/internal/core/domain"
	"github.com/aiauto/dashboard-api/internal/core/service"
	mongodb "github.com/aiauto/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/aiauto/dashboard-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the dependencies and settings NewRouter needs.
type RouterConfig struct {
	DemoTable service.DemoTable
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	notifier := redisdb.NewNotifier(rdb)
	authService := service.NewAuthService(cfg.DemoTable, userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.Logger)
	userService := service.NewUserService(userRepo, notifier, cfg.Logger)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- API routes ---
	api := e.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/signup", userHandler.Signup)

	users := api.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PATCH("/:id", userHandler.Patch, middleware.RequireRole(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// liveness: is the process alive? readiness: are dependencies up?
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
