package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ueberstunden/overtime-ledger/internal/httpapi/handler"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/middleware"
	"github.com/ueberstunden/overtime-ledger/internal/httpapi/session"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	sessions *session.Manager,
	transactionHandler *handler.TransactionHandler,
	authHandler *handler.AuthHandler,
	settingsHandler *handler.SettingsHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// Auth endpoints stay outside the session gate
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/status", authHandler.Status)
	}

	// Everything else requires a live session
	api := r.Group("/api", middleware.RequireSession(sessions))
	{
		transactions := api.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.GET("/balance", transactionHandler.Balance)
			transactions.POST("/import", transactionHandler.Import)
			transactions.GET("/export", transactionHandler.Export)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Put)

		api.POST("/auth/password", authHandler.ChangePassword)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
