package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lip-protocol/lip-coordinator/pkg/config"
	"github.com/lip-protocol/lip-coordinator/pkg/coordinator"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up context with cancellation on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create the coordinator service
	service, err := coordinator.NewService(cfg)
	if err != nil {
		log.Fatalf("Failed to create coordinator service: %v", err)
	}

	// Set up signal handling for graceful shutdown
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Println("Received termination signal, shutting down gracefully...")
		cancel()
	}()

	// Start the service
	log.Println("Starting the coordinator service...")
	service.Start(ctx)
}
