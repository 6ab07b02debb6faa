package main

import (
	"context"
	"daypicks/cmd"
	"daypicks/internal/domain"
	"daypicks/internal/logger"
	"daypicks/internal/seed"
	"daypicks/internal/service"
	"daypicks/internal/util"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

	rootCmd := &cobra.Command{
		Use:   "daypicks",
		Short: "day trading signal scanner",
	}

	var (
		dryRun  bool
		top     int
		budget  float64
		cdrOnly bool
		style   string
		csvPath string
	)

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "scan the watchlist and save picks",
		RunE: func(c *cobra.Command, args []string) error {
			result, err := apiHandler.ScannerService.Scan(ctx, service.ScanInput{
				Tickers: args,
				DryRun:  dryRun,
				Top:     top,
			})
			if err != nil {
				return err
			}
			util.Pprint(result)
			return nil
		},
	}
	scanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "evaluate without saving picks")
	scanCmd.Flags().IntVar(&top, "top", 0, "only show the top N picks")

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "resolve pending pick outcomes against current prices",
		RunE: func(c *cobra.Command, args []string) error {
			result, err := apiHandler.ResolverService.Resolve(ctx, 30)
			if err != nil {
				return err
			}
			util.Pprint(result)
			return nil
		},
	}

	learnCmd := &cobra.Command{
		Use:   "learn",
		Short: "analyze resolved picks and refresh the calibration",
		RunE: func(c *cobra.Command, args []string) error {
			analysis, err := apiHandler.LearningService.Analyze(ctx)
			if err != nil {
				return err
			}
			util.Pprint(analysis)

			calibration, err := apiHandler.LearningService.Calibrate(ctx)
			if err != nil {
				return err
			}
			util.Pprint(calibration)
			return nil
		},
	}

	allocateCmd := &cobra.Command{
		Use:   "allocate",
		Short: "size pending picks to a budget",
		RunE: func(c *cobra.Command, args []string) error {
			result, err := apiHandler.BudgetService.Allocate(ctx, service.AllocateInput{
				Budget:  budget,
				CdrOnly: cdrOnly,
				Style:   domain.TradingStyle(style),
				Top:     top,
			})
			if err != nil {
				return err
			}
			util.Pprint(result)
			return nil
		},
	}
	allocateCmd.Flags().Float64Var(&budget, "budget", 0, "available capital")
	allocateCmd.Flags().BoolVar(&cdrOnly, "cdr-only", false, "only consider commission-free CDR picks")
	allocateCmd.Flags().StringVar(&style, "style", "", "trading style: intraday, swing or longterm")
	allocateCmd.Flags().IntVar(&top, "top", 0, "only show the top N picks")

	seedCmd := &cobra.Command{
		Use:   "seed-watchlist",
		Short: "load watchlist tickers from a csv file",
		RunE: func(c *cobra.Command, args []string) error {
			n, err := seed.SeedWatchlist(apiHandler.Db, apiHandler.WatchlistRepository, csvPath)
			if err != nil {
				return err
			}
			log.Printf("seeded %d watchlist tickers", n)
			return nil
		},
	}
	seedCmd.Flags().StringVar(&csvPath, "csv", "watchlist.csv", "path to the watchlist csv")

	rootCmd.AddCommand(scanCmd, resolveCmd, learnCmd, allocateCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
