// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monumento-api/config"
	"monumento-api/db"
	_ "monumento-api/docs"
	"monumento-api/handler"
	"monumento-api/logger"
	"monumento-api/realtime"
	"monumento-api/repository"
	"monumento-api/router"
	"monumento-api/service"

	"github.com/golang-jwt/jwt/v5"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(); err != nil {
		logger.Log.Fatalf("Error running database migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Signing Keys ---
	// The private key stays inside the auth service; the gate and the
	// realtime channel only ever see the public half.
	privatePEM, err := os.ReadFile(config.AppConfig.JWT.PrivateKeyPath)
	if err != nil {
		logger.Log.Fatalf("Error reading private key: %v", err)
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		logger.Log.Fatalf("Error parsing private key: %v", err)
	}
	publicPEM, err := os.ReadFile(config.AppConfig.JWT.PublicKeyPath)
	if err != nil {
		logger.Log.Fatalf("Error reading public key: %v", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		logger.Log.Fatalf("Error parsing public key: %v", err)
	}

	// --- Realtime Channel ---
	hub := realtime.NewHub()
	go hub.Run()

	wsHandler, err := realtime.NewHandler(hub, publicPEM)
	if err != nil {
		logger.Log.Fatalf("Error creating realtime handler: %v", err)
	}

	// --- Wiring All Layers Together ---
	userRepo := repository.NewUserRepository(database)
	monumentRepo := repository.NewMonumentRepository(database)
	favoriteRepo := repository.NewFavoriteRepository(database)

	authService := service.NewAuthService(userRepo, privateKey, publicKey,
		config.AppConfig.JWT.AccessTokenTTL, config.AppConfig.JWT.RefreshTokenTTL)
	loginLimiter := service.NewLoginLimiter(redisClient,
		config.AppConfig.RateLimit.LoginMaxAttempts, config.AppConfig.RateLimit.LoginWindow)
	monumentService := service.NewMonumentService(monumentRepo, redisClient, hub)
	favoriteService := service.NewFavoriteService(favoriteRepo, monumentRepo, userRepo)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	monumentHandler := handler.NewMonumentHandler(monumentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	userHandler := handler.NewUserHandler(userService)

	r := router.NewRouter(authHandler, monumentHandler, favoriteHandler, userHandler, wsHandler, publicKey)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}
	hub.Stop()

	logger.Log.Info("Server exited properly")
}
