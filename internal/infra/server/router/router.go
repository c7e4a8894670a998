// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/integration/entrypoint/controller"
	"github.com/goat-farm/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	logger              *slog.Logger
	healthController    *controller.HealthController
	authController      *controller.AuthController
	animalController    *controller.AnimalController
	treatmentController *controller.TreatmentController
	saleController      *controller.SaleController
	expenseController   *controller.ExpenseController
	breedingController  *controller.BreedingController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	logger *slog.Logger,
	healthController *controller.HealthController,
	authController *controller.AuthController,
	animalController *controller.AnimalController,
	treatmentController *controller.TreatmentController,
	saleController *controller.SaleController,
	expenseController *controller.ExpenseController,
	breedingController *controller.BreedingController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		logger:              logger,
		healthController:    healthController,
		authController:      authController,
		animalController:    animalController,
		treatmentController: treatmentController,
		saleController:      saleController,
		expenseController:   expenseController,
		breedingController:  breedingController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if r.logger != nil {
		r.engine.Use(middleware.RequestID(r.logger))
	}

	r.setupHealthRoutes()
	r.setupAuthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAuthRoutes configures the public authentication endpoints.
func (r *Router) setupAuthRoutes() {
	if r.authController == nil {
		return
	}

	auth := r.engine.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		if r.loginRateLimiter != nil {
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		} else {
			auth.POST("/login", r.authController.Login)
		}
	}
}

// setupAPIRoutes configures the authenticated API routes.
func (r *Router) setupAPIRoutes() {
	if r.authMiddleware == nil {
		return
	}
	authenticated := r.authMiddleware.Authenticate()

	if r.animalController != nil {
		animals := r.engine.Group("/animals")
		animals.Use(authenticated)
		{
			animals.GET("/get", r.animalController.List)
			animals.POST("/add", r.animalController.Create)
			animals.GET("/:id", r.animalController.Get)
			animals.PATCH("/:id/update", r.animalController.Update)
			animals.GET("/archive", r.animalController.Archive)
			animals.GET("/total/animals", r.animalController.Totals)
		}
	}

	if r.treatmentController != nil {
		treatments := r.engine.Group("/treatments")
		treatments.Use(authenticated)
		{
			treatments.GET("/get", r.treatmentController.List)
			treatments.POST("/add", r.treatmentController.Record)
			treatments.GET("/:id", r.treatmentController.Get)
			treatments.PATCH("/:id/update", r.treatmentController.Update)
			treatments.DELETE("/:id/delete", r.treatmentController.Delete)
		}
	}

	if r.saleController != nil {
		sales := r.engine.Group("/sales")
		sales.Use(authenticated)
		{
			sales.GET("/", r.saleController.List)
			sales.POST("/make", r.saleController.Record)
			sales.GET("/recent", r.saleController.Recent)
			sales.GET("/total", r.saleController.Total)
			sales.GET("/total_profit", r.saleController.ProfitSummary)
			sales.GET("/search", r.saleController.Search)
			sales.GET("/stats/:grouping", r.saleController.Stats)
			sales.GET("/animal/:id", r.saleController.AnimalSales)
			sales.GET("/animal/:id/total", r.saleController.AnimalSalesTotal)
			sales.GET("/:id", r.saleController.Get)
			sales.PATCH("/:id", r.saleController.Update)
		}
	}

	if r.expenseController != nil {
		expenses := r.engine.Group("/expenses")
		expenses.Use(authenticated)
		{
			expenses.GET("/get", r.expenseController.List)
			expenses.POST("/add", r.expenseController.Create)
			expenses.GET("/total", r.expenseController.Totals)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PATCH("/:id/update", r.expenseController.Update)
			expenses.DELETE("/:id/delete", r.expenseController.Delete)
		}
	}

	if r.breedingController != nil {
		breeding := r.engine.Group("/breeding")
		breeding.Use(authenticated)
		{
			breeding.POST("/add", r.breedingController.Create)
			breeding.GET("/get", r.breedingController.List)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
