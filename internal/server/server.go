// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"strings"
	"sync"
	"time"

	"fitgpt/internal/auth"
	"fitgpt/internal/cache"
	"fitgpt/internal/config"
	"fitgpt/internal/database"
	"fitgpt/internal/middleware"
	"fitgpt/internal/models"
	"fitgpt/internal/repository"
	"fitgpt/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// promMiddleware is created once: fiberprometheus registers its collectors
// with the default prometheus registry, which tolerates no duplicates.
var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	redis    *redis.Client
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	auth     *service.AuthService
	users    *service.UserService
	wardrobe *service.WardrobeService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	// Redis is optional; everything degrades gracefully without it.
	if cfg.RedisURL != "" && cfg.Env != "test" {
		cache.InitRedis(cfg.RedisURL)
	}
	redisClient := cache.GetClient()

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	return &Server{
		config:   cfg,
		db:       db,
		redis:    redisClient,
		userRepo: userRepo,
		itemRepo: itemRepo,
		auth:     service.NewAuthService(userRepo, hasher, tokens),
		users:    service.NewUserService(userRepo),
		wardrobe: service.NewWardrobeService(itemRepo),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// OpenTelemetry spans per request
	app.Use(middleware.TracingMiddleware())

	// Prometheus HTTP metrics
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New("fitgpt")
	})
	promMiddleware.RegisterAt(app, "/metrics")
	app.Use(promMiddleware.Middleware)

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
		Next: func(c *fiber.Ctx) bool {
			return s.config.Env == "test"
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health check
	app.Get("/", s.HealthCheck)

	// Auth routes
	app.Post("/register", middleware.RateLimit(s.redis, 3, 10*time.Minute, "register"), s.Register)
	app.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Protected routes
	me := app.Group("/me", s.AuthRequired())
	me.Get("/", s.GetMe)
	me.Put("/profile", s.UpdateMyProfile)
	me.Delete("/", s.DeleteMe)

	items := app.Group("/wardrobe/items", s.AuthRequired())
	items.Post("/", s.CreateItem)
	items.Get("/", s.ListItems)
	items.Put("/:id", s.UpdateItem)
	items.Delete("/:id", s.DeleteItem)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "FitGPT backend is running",
		"status":  "healthy",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It resolves the bearer
// token to a concrete user via the auth service; handlers never see a raw
// token.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithAppError(c,
				models.NewUnauthenticatedError("Authorization required"))
		}

		user, err := s.auth.Authenticate(c.Context(), tokenString)
		if err != nil {
			return models.RespondWithAppError(c, err)
		}

		c.Locals("userID", user.ID)
		c.Locals("currentUser", user)

		return c.Next()
	}
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
