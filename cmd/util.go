package cmd

import (
	"database/sql"
	"daypicks/api"
	"daypicks/internal/fees"
	"daypicks/internal/registry"
	"daypicks/internal/repository"
	"daypicks/internal/service"
	"daypicks/internal/util"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	strategyRegistry := registry.MustDefault()

	pickRepository := repository.NewPickRepository(dbConn)
	watchlistRepository := repository.NewWatchlistRepository(dbConn)
	calibrationRepository := repository.NewCalibrationRepository(dbConn)
	marketDataRepository := repository.NewMarketDataRepository(
		secrets.Alpaca.ApiKey,
		secrets.Alpaca.ApiSecret,
		secrets.Alpaca.Endpoint,
	)

	scannerService := service.NewScannerService(
		dbConn,
		watchlistRepository,
		pickRepository,
		calibrationRepository,
		marketDataRepository,
		strategyRegistry,
	)
	picksService := service.NewPicksService(pickRepository)
	resolverService := service.NewResolverService(
		pickRepository,
		marketDataRepository,
		strategyRegistry,
	)
	learningService := service.NewLearningService(
		pickRepository,
		calibrationRepository,
	)
	budgetService := service.NewBudgetService(pickRepository, fees.DefaultSchedule())

	apiHandler := &api.ApiHandler{
		Db:                  dbConn,
		ScannerService:      scannerService,
		PicksService:        picksService,
		ResolverService:     resolverService,
		LearningService:     learningService,
		BudgetService:       budgetService,
		WatchlistRepository: watchlistRepository,
	}

	return apiHandler, nil
}
