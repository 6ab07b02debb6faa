package main

import (
	"context"
	"daypicks/cmd"
	"daypicks/internal/logger"
	"daypicks/internal/scheduler"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
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

	s := scheduler.NewScheduler(
		ctx,
		apiHandler.ScannerService,
		apiHandler.ResolverService,
		apiHandler.LearningService,
	)
	if err := s.RegisterAll(); err != nil {
		log.Fatal(err)
	}
	s.Start()
	defer s.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
