package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campstead/reservation-api/docs"
	"github.com/campstead/reservation-api/internal/api/handler"
	"github.com/campstead/reservation-api/internal/api/middleware"
	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/service"
	"github.com/campstead/reservation-api/internal/infrastructure/config"
	mongodb "github.com/campstead/reservation-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campstead/reservation-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each route declares its own policy: "none", any-authenticated (bearer auth
// alone), or a role set (bearer auth + RBAC). The /ops group is the
// service-account surface and uses the static Basic scheme instead.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("reservations"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	spotRepo := mongodb.NewSpotRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	windowRepo := mongodb.NewAvailabilityRepository(db)
	spotCache := redisdb.NewSpotCache(rdb)

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	spotService := service.NewSpotService(spotRepo, spotCache, log)
	bookingService := service.NewBookingService(bookingRepo, spotRepo, spotCache, log)
	commentService := service.NewCommentService(commentRepo, spotRepo, log)
	windowService := service.NewAvailabilityService(windowRepo, spotRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	spotHandler := handler.NewSpotHandler(spotService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	commentHandler := handler.NewCommentHandler(commentService)
	windowHandler := handler.NewAvailabilityHandler(windowService)

	bearer := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// Fixed service-account table for the Basic scheme; read-only after this.
	basic := middleware.BasicAuth(map[string]middleware.ServiceAccount{
		cfg.Ops.AdminUser:   {Password: cfg.Ops.AdminPassword, Role: domain.RoleAdmin},
		cfg.Ops.ServiceUser: {Password: cfg.Ops.ServicePassword, Role: domain.RoleUser},
	})

	// --- Public routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/spots", spotHandler.List)
	v1.GET("/spots/:id", spotHandler.Get)
	v1.GET("/comments/spot/:spotId", commentHandler.ListBySpot)
	v1.GET("/availability/spot/:spotId", windowHandler.ListBySpot)

	// --- Authenticated routes (bearer scheme) ---
	v1.GET("/users/me", userHandler.Me, bearer)
	v1.GET("/users/:id", userHandler.Get, bearer)
	v1.GET("/users", userHandler.List, bearer, adminOnly)
	v1.PUT("/users/:id", userHandler.Update, bearer)
	v1.DELETE("/users/:id", userHandler.Delete, bearer, adminOnly)

	v1.POST("/bookings", bookingHandler.Reserve, bearer)
	v1.GET("/bookings/:id", bookingHandler.Get, bearer)
	v1.GET("/bookings/user/:userId", bookingHandler.ListByUser, bearer)
	v1.PUT("/bookings/:id", bookingHandler.Update, bearer, adminOnly)
	v1.DELETE("/bookings/:id", bookingHandler.Delete, bearer, adminOnly)

	v1.POST("/spots", spotHandler.Create, bearer, adminOnly)
	v1.POST("/comments", commentHandler.Create, bearer)

	v1.POST("/availability", windowHandler.Create, bearer, adminOnly)
	v1.PUT("/availability/:id", windowHandler.Update, bearer, adminOnly)
	v1.DELETE("/availability/:id", windowHandler.Delete, bearer, adminOnly)

	// --- Service-account surface (static Basic scheme) ---
	ops := e.Group("/ops", basic)
	ops.PATCH("/spots/:id/availability", spotHandler.OverrideAvailability, adminOnly)
	ops.GET("/identities", userHandler.List, adminOnly)

	// --- Health probes and observability (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
