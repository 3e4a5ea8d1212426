package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medialocker-backend-go/internal/api"
	"medialocker-backend-go/internal/config"
	"medialocker-backend-go/internal/core"
	"medialocker-backend-go/internal/db"
	"medialocker-backend-go/internal/middleware"
	"medialocker-backend-go/internal/token"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Connect to MongoDB ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	mongoDB, err := db.Connect(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to MongoDB", zap.Error(err))
	}
	zapLogger.Info("MongoDB connection established successfully.")

	// --- 4. Initialize Repositories ---
	userRepo := db.NewMongoUserRepository(mongoDB)
	lockerRepo := db.NewMongoLockerRepository(mongoDB)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 5. Initialize Token Manager and Services ---
	tokenManager := token.NewManager(appConfig.JWTSecret)
	userService := core.NewUserService(userRepo, tokenManager)
	lockerService := core.NewLockerService(lockerRepo)
	zapLogger.Info("Core services initialized successfully.")

	// --- 6. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
		zapLogger.Info("Gin mode set to 'release'.")
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Gin mode set to 'debug'.")
	}
	router := gin.New()
	zapLogger.Info("Gin engine created.")

	// --- 7. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))

	// Apply CORS middleware only if ClientURL is configured.
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 8. Setup API Routes ---
	api.SetupRoutes(
		router,
		zapLogger,
		tokenManager,
		userService,
		lockerService,
	)

	// --- 9. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 10. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := mongoDB.Close(shutdownCtx); err != nil {
		zapLogger.Error("Failed to close MongoDB connection cleanly", zap.Error(err))
	} else {
		zapLogger.Info("MongoDB connection closed.")
	}

	zapLogger.Info("Server exiting gracefully.")
}
