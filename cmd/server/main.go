package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"resourcehub/internal/auth"
	"resourcehub/internal/cache"
	"resourcehub/internal/config"
	"resourcehub/internal/db"
	"resourcehub/internal/handler"
	"resourcehub/internal/model"
	"resourcehub/internal/repository"
	"resourcehub/internal/router"
	"resourcehub/internal/service"
)

// @title Resource Directory API
// @version 1.0
// @description Social-support resource directory with provider publishing, admin moderation, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Resource{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	profileService := service.NewProfileService(profileRepo)
	resourceService := service.NewResourceService(resourceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	resourceHandler := handler.NewResourceHandler(resourceService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		userRepo,
		authHandler,
		userHandler,
		profileHandler,
		resourceHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
