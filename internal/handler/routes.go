package handler

import (
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, allocationHandler *AllocationHandler, cycleHandler *CycleHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Allocation routes (stateless)
	allocations := api.Group("/allocations")
	allocations.POST("/compute", allocationHandler.ComputeAllocation)
	allocations.GET("/strategies/:name", allocationHandler.GetStrategy)

	// Cycle routes
	cycles := api.Group("/cycles")
	cycles.GET("/window", cycleHandler.GetWindow)
	cycles.POST("", cycleHandler.StartCycle)
	cycles.GET("", cycleHandler.ListCycles)
	cycles.GET("/current", cycleHandler.GetCurrentCycle)
	cycles.GET("/:id", cycleHandler.GetCycle)
	cycles.POST("/:id/categories", cycleHandler.CreateCategory)
	cycles.GET("/:id/categories", cycleHandler.ListCategories)
	cycles.POST("/:id/transactions", cycleHandler.RecordTransaction)
	cycles.GET("/:id/transactions", cycleHandler.ListTransactions)
	cycles.GET("/:id/summary", cycleHandler.GetSummary)
	cycles.GET("/:id/reallocation", cycleHandler.GetReallocation)
	cycles.POST("/:id/reallocation", cycleHandler.ApplyReallocation)
	cycles.GET("/:id/rollover", cycleHandler.GetRollover)
	cycles.POST("/:id/rollover", cycleHandler.RollOver)
}
