package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/aichef/ai-chef/config"
)

func main() {
	cfg := config.LoadConfig()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	nc, err := NewNats(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer nc.Close()

	pg, err := NewPg(cfg.Postgres.ConnStr())
	if err != nil {
		log.Fatal(err)
	}

	handler, err := NewHandler(pg)
	if err != nil {
		log.Fatal(err)
	}

	slog.Info("Starting recorder", "workers", cfg.Recorder.Workers, "queueSize", cfg.Recorder.QueueSize)

	pool := NewPool(ctx, cfg.Recorder.Workers, cfg.Recorder.QueueSize, handler.HandleGenerationMessage)

	consumer := errgroup.Group{}
	errChan := make(chan error)

	consumer.Go(func() error {
		return nc.Consume(ctx, cfg.Nats.GenerationsSubject, pool)
	})

	go func() {
		errChan <- consumer.Wait()
	}()

	select {
	case <-shutdown:
		slog.Info("Shutting down")
		cancel()
	case err := <-errChan:
		slog.Info("Shutting down due to error", "error", err)
		cancel()
	}

	pool.Stop()
	pool.Wait()
}
