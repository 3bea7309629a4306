package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	api "github.com/thankful-ai/autodns/http"
	"github.com/thankful-ai/autodns/internal/amazon"
	"github.com/thankful-ai/autodns/internal/autodns"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", autodns.ServerConfigName,
		"config filepath")
	addr := flag.String("addr", ":5001", "listen address")
	flag.Parse()

	_ = godotenv.Load()
	conf, err := autodns.ParseConfig(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		conf, err = autodns.ConfigFromEnv()
	}
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	log, err := autodns.NewLogger(conf.Log)
	if err != nil {
		return fmt.Errorf("new logger: %w", err)
	}

	ctx := context.Background()
	clients, err := amazon.NewClients(ctx, conf.ZoneID, conf.Region)
	if err != nil {
		return fmt.Errorf("new clients: %w", err)
	}
	s := autodns.NewSynchronizer(log, conf, clients.EC2, clients.Route53)

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()
	rt := api.NewRouter(api.RouterOpts{Log: zlog, Sync: s})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           rt.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", *addr))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen and serve: %w", err)
	case <-sigCh:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
