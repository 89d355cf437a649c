package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/config"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/infra"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/router"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Async plumbing: the worker pool renders ticket PDFs and sends emails off
	// the request path. Handlers are wired here (composition root) so the pool
	// has full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)
	ventaRepo := repository.NewVentaRepository(db)
	fiadoRepo := repository.NewFiadoRepository(db)

	workerHandlers := &worker.WorkerHandlers{
		Ticket: worker.NewTicketWorker(ventaRepo, dispatcher, cfg.PDFStoragePath),
		Email:  worker.NewEmailWorker(mailer, smtpCB, rdb),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	// Due-date sweep: pending debts past their due date flip to "vencida" and
	// the customer gets a reminder email.
	worker.StartVencimientoCron(ctx, worker.VencimientoCronConfig{
		FiadoRepo:  fiadoRepo,
		Dispatcher: dispatcher,
	})

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
