// Package server wires the HTTP API: routing, middleware and the Fiber handlers
// fronting the service layer.
package server

import (
	"context"
	"fmt"
	"time"

	"devbits/internal/cache"
	"devbits/internal/config"
	"devbits/internal/database"
	"devbits/internal/middleware"
	"devbits/internal/repository"
	"devbits/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	oauthConfig    *oauth2.Config
	userService    *service.UserService
	postService    *service.PostService
	commentService *service.CommentService
	likeService    *service.LikeService
}

// NewServer creates a server instance, connecting the database and Redis.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps builds a server on top of already established connections.
// Tests use it to inject an in-memory database.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	middleware.InitMiddleware(cfg)

	return &Server{
		config: cfg,
		db:     db,
		redis:  redisClient,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userService:    service.NewUserService(userRepo),
		postService:    service.NewPostService(postRepo),
		commentService: service.NewCommentService(commentRepo, postRepo),
		likeService:    service.NewLikeService(likeRepo, postRepo, commentRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus request metrics
	prom := middleware.InitMetrics("devbits")
	prom.RegisterAt(app, "/metrics")
	app.Use(middleware.MetricsMiddleware(prom))

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
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	// OAuth login flow; the callback sets the session cookie.
	auth := app.Group("/auth")
	auth.Get("/google", s.GoogleLogin)
	auth.Get("/google/callback", s.GoogleCallback)

	api := app.Group("/api", middleware.AuthRequired, middleware.ContextMiddleware())

	user := api.Group("/user")
	user.Put("/", s.UpdateUser)
	user.Delete("/", s.DeleteUser)
	// Specific /:userId/:resource routes before the generic /:userId route
	user.Get("/:userId/posts", s.GetUserPosts)
	user.Get("/:userId/comments", s.GetUserComments)
	user.Get("/:userId", s.GetUser)

	post := api.Group("/post")
	post.Post("/", s.CreatePost)
	post.Post("/:postId/like", s.LikePost)
	post.Get("/:postId/likes/count", s.CountPostLikes)
	post.Get("/:postId/likes", s.GetPostLikes)
	post.Get("/:postId/comments", s.GetPostComments)
	post.Get("/:postId", s.GetPost)
	post.Put("/:postId", s.UpdatePost)
	post.Delete("/:postId", s.DeletePost)

	comment := api.Group("/comment")
	comment.Post("/", s.CreateComment)
	comment.Post("/:commentId/like", s.LikeComment)
	comment.Get("/:commentId/likes/count", s.CountCommentLikes)
	comment.Get("/:commentId/likes", s.GetCommentLikes)
	comment.Get("/:commentId", s.GetComment)
	comment.Put("/:commentId", s.UpdateComment)
	comment.Delete("/:commentId", s.DeleteComment)

	like := api.Group("/like")
	like.Get("/:likeId", s.GetLike)
	like.Delete("/:likeId", s.RemoveLike)
}

// HealthCheck handles health check requests.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
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
		"status": "ok",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "devbits API",
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown releases the server's connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
