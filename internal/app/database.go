// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/recipe-cost-service/config"
	"github.com/guttosm/recipe-cost-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-cost-service/internal/repository"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                       *repository.MongoDB
	IngredientRepo           repository.IngredientRepository
	RecipeRepo               repository.RecipeRepository
	AssociationRepo          repository.AssociationRepository
	UserRepo                 repository.UserRepositoryInterface
	TxnRunner                repository.TxnRunner
	LoggingService           service.LoggingService
	IngredientCircuitBreaker *circuitbreaker.CircuitBreaker
	RecipeCircuitBreaker     *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker       *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories and
// supporting services. The database is a hard dependency: recipe totals live
// there, so a failed connection is fatal.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	ingredientCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-ingredients",
	})

	recipeCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-recipes",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	ingredientRepo := repository.NewMongoIngredientRepository(db)
	ingredientRepoWithCB := repository.NewIngredientRepositoryWithCircuitBreaker(ingredientRepo, ingredientCB)

	recipeRepo := repository.NewMongoRecipeRepository(db)
	recipeRepoWithCB := repository.NewRecipeRepositoryWithCircuitBreaker(recipeRepo, recipeCB)

	associationRepo := repository.NewMongoAssociationRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &DatabaseComponents{
		DB:                       db,
		IngredientRepo:           ingredientRepoWithCB,
		RecipeRepo:               recipeRepoWithCB,
		AssociationRepo:          associationRepo,
		UserRepo:                 userRepo,
		TxnRunner:                repository.NewMongoTxnRunner(db.Client),
		LoggingService:           loggingService,
		IngredientCircuitBreaker: ingredientCB,
		RecipeCircuitBreaker:     recipeCB,
		LogsCircuitBreaker:       logsCB,
	}, nil
}
