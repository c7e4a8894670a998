// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/goat-farm/backend/config"
	"github.com/goat-farm/backend/internal/application/usecase/animal"
	"github.com/goat-farm/backend/internal/application/usecase/auth"
	"github.com/goat-farm/backend/internal/application/usecase/breeding"
	"github.com/goat-farm/backend/internal/application/usecase/expense"
	"github.com/goat-farm/backend/internal/application/usecase/sale"
	"github.com/goat-farm/backend/internal/application/usecase/treatment"
	"github.com/goat-farm/backend/internal/infra/server/router"
	"github.com/goat-farm/backend/internal/integration/adapters"
	"github.com/goat-farm/backend/internal/integration/entrypoint/controller"
	"github.com/goat-farm/backend/internal/integration/entrypoint/middleware"
	"github.com/goat-farm/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	animalRepo := persistence.NewAnimalRepository(db)
	treatmentRepo := persistence.NewTreatmentRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	breedingRepo := persistence.NewBreedingRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Animal use cases
	createAnimalUseCase := animal.NewCreateAnimalUseCase(animalRepo)
	listAnimalsUseCase := animal.NewListAnimalsUseCase(animalRepo)
	getAnimalUseCase := animal.NewGetAnimalUseCase(animalRepo)
	updateAnimalUseCase := animal.NewUpdateAnimalUseCase(animalRepo)
	listArchiveUseCase := animal.NewListArchiveUseCase(animalRepo)
	animalTotalsUseCase := animal.NewAnimalTotalsUseCase(animalRepo)

	// Treatment use cases
	recordTreatmentUseCase := treatment.NewRecordTreatmentUseCase(treatmentRepo, animalRepo)
	listTreatmentsUseCase := treatment.NewListTreatmentsUseCase(treatmentRepo)
	getTreatmentUseCase := treatment.NewGetTreatmentUseCase(treatmentRepo)
	updateTreatmentUseCase := treatment.NewUpdateTreatmentUseCase(treatmentRepo)
	deleteTreatmentUseCase := treatment.NewDeleteTreatmentUseCase(treatmentRepo)

	// Sale use cases
	recordSaleUseCase := sale.NewRecordSaleUseCase(saleRepo)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
	getSaleUseCase := sale.NewGetSaleUseCase(saleRepo)
	updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo)
	recentSalesUseCase := sale.NewRecentSalesUseCase(saleRepo)
	salesTotalUseCase := sale.NewSalesTotalUseCase(saleRepo)
	searchSalesUseCase := sale.NewSearchSalesUseCase(saleRepo)
	salesStatsUseCase := sale.NewSalesStatsUseCase(saleRepo)
	profitSummaryUseCase := sale.NewProfitSummaryUseCase(saleRepo)
	animalSalesUseCase := sale.NewAnimalSalesUseCase(saleRepo, animalRepo)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, animalRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	expenseTotalsUseCase := expense.NewExpenseTotalsUseCase(expenseRepo)

	// Breeding use cases
	createBreedingUseCase := breeding.NewCreateBreedingRecordUseCase(breedingRepo, animalRepo)
	listBreedingUseCase := breeding.NewListBreedingRecordsUseCase(breedingRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	animalController := controller.NewAnimalController(
		createAnimalUseCase,
		listAnimalsUseCase,
		getAnimalUseCase,
		updateAnimalUseCase,
		listArchiveUseCase,
		animalTotalsUseCase,
	)

	treatmentController := controller.NewTreatmentController(
		recordTreatmentUseCase,
		listTreatmentsUseCase,
		getTreatmentUseCase,
		updateTreatmentUseCase,
		deleteTreatmentUseCase,
	)

	saleController := controller.NewSaleController(
		recordSaleUseCase,
		listSalesUseCase,
		getSaleUseCase,
		updateSaleUseCase,
		recentSalesUseCase,
		salesTotalUseCase,
		searchSalesUseCase,
		salesStatsUseCase,
		profitSummaryUseCase,
		animalSalesUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		expenseTotalsUseCase,
	)

	breedingController := controller.NewBreedingController(createBreedingUseCase, listBreedingUseCase)

	// Middleware. Tests get a loose login rate limit to avoid flakes.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		logger,
		healthController,
		authController,
		animalController,
		treatmentController,
		saleController,
		expenseController,
		breedingController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
