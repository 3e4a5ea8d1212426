package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medialocker-backend-go/internal/core"
	"medialocker-backend-go/internal/middleware"
	"medialocker-backend-go/internal/models"
	"medialocker-backend-go/internal/token"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) are applied to the
// router instance before this function is called, typically in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	tokenManager *token.Manager,
	userService core.UserService,
	lockerService core.LockerService,
) {
	authMW := middleware.NewAuthMiddleware(tokenManager)

	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService)
	lockerHandler := NewLockerHandler(lockerService)

	// --- Public endpoints ---
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// --- Locker endpoints ---
	// All locker operations require a bearer token. The :userId path segment
	// is kept for URL compatibility; the acting identity always comes from
	// the verified token.
	lockerGroup := router.Group("/locker", authMW.VerifyToken())
	{
		lockerGroup.POST("/:userId", lockerHandler.CreateLocker)
		lockerGroup.GET("/:userId", lockerHandler.ListLockers)
		lockerGroup.GET("/:userId/:lockerId", lockerHandler.GetLocker)
		lockerGroup.DELETE("/:userId/:lockerId", lockerHandler.DeleteLocker)

		lockerGroup.POST("/:userId/:lockerId/games", lockerHandler.AddItem(models.KindGame))
		lockerGroup.DELETE("/:userId/:lockerId/games/:itemId", lockerHandler.RemoveItem(models.KindGame))

		lockerGroup.POST("/:userId/:lockerId/movies", lockerHandler.AddItem(models.KindMovie))
		lockerGroup.DELETE("/:userId/:lockerId/movies/:itemId", lockerHandler.RemoveItem(models.KindMovie))

		lockerGroup.POST("/:userId/:lockerId/books", lockerHandler.AddItem(models.KindBook))
		lockerGroup.DELETE("/:userId/:lockerId/books/:itemId", lockerHandler.RemoveItem(models.KindBook))
	}

	// --- User locker-reference endpoints ---
	userGroup := router.Group("/user", authMW.VerifyToken())
	{
		userGroup.GET("/lockers", userHandler.GetUserLockers)
		userGroup.POST("/lockers", userHandler.AttachLocker)
		userGroup.DELETE("/lockers/:lockerId", userHandler.DetachLocker)
	}

	// --- General Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Media locker backend is healthy."})
	})

	logger.Info("API routes configured successfully.")
}
