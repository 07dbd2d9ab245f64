package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/advance-ledger/internal/api/handler"
	"github.com/advance-ledger/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	billHandler *handler.BillHandler,
	fundingHandler *handler.FundingHandler,
	settlementHandler *handler.SettlementHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(logger))

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Bill operations
		bills := v1.Group("/bills")
		{
			bills.POST("", billHandler.Create)
			bills.GET("", billHandler.List)
			bills.GET("/:id", billHandler.GetByID)
			bills.PUT("/:id", billHandler.Update)
			bills.DELETE("/:id", billHandler.Delete)
			bills.GET("/:id/settlements", billHandler.Settlements)
		}

		// Funding record operations
		fundingRecords := v1.Group("/funding-records")
		{
			fundingRecords.POST("", fundingHandler.Create)
			fundingRecords.GET("", fundingHandler.List)
			fundingRecords.GET("/:id", fundingHandler.GetByID)
		}

		// Settlement application
		v1.POST("/settlements", settlementHandler.Apply)

		// Aggregate reporting
		v1.GET("/dashboard", dashboardHandler.Get)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
