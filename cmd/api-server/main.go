package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"gamevault/database"
	"gamevault/internal/config"
	"gamevault/internal/http-api/handler"
	"gamevault/internal/http-api/middleware"
	"gamevault/internal/http-api/repository"
	"gamevault/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}

	setupLogger(cfg)

	db, err := database.ConnectDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	sessionRepo, err := repository.NewSessionRepository(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, sessionRepo, cfg)
	userService := service.NewUserService(userRepo, ratingRepo, feedbackRepo)
	gameService := service.NewGameService(gameRepo, ratingRepo, feedbackRepo)
	ratingService := service.NewRatingService(ratingRepo, userRepo, gameRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo, gameRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	userHandler := handler.NewUserHandler(userService)
	gameHandler := handler.NewGameHandler(gameService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	// 10 writes/sec with burst of 20, per client
	r.Use(middleware.RateLimit(rate.Limit(10), 20))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	authRequired := middleware.AuthMiddleware(authService)

	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	gameHandler.RegisterRoutes(api)
	ratingHandler.RegisterRoutes(api)
	feedbackHandler.RegisterRoutes(api)

	// Authenticated upsert submissions hang off the games group
	games := api.Group("/games")
	ratingHandler.RegisterSubmitRoutes(games, authRequired)
	feedbackHandler.RegisterSubmitRoutes(games, authRequired)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logrus.Infof("Server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

func setupLogger(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
}
