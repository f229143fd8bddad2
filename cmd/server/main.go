package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/os10prep/os10-backend/internal/bank"
	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/database"
	"github.com/os10prep/os10-backend/internal/genai"
	"github.com/os10prep/os10-backend/internal/handler"
	"github.com/os10prep/os10-backend/internal/logger"
	"github.com/os10prep/os10-backend/internal/repository"
	"github.com/os10prep/os10-backend/internal/router"
	"github.com/os10prep/os10-backend/internal/service"
	"github.com/os10prep/os10-backend/internal/store"
	"github.com/os10prep/os10-backend/internal/validator"
	"github.com/os10prep/os10-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting OS10 Prep Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories and Stores ────────────────────────────
	accountRepo := repository.NewAccountRepository(pool)
	attemptRepo := repository.NewAttemptRepository(pool)
	sessionStore := store.NewSessionStore(rdb)
	attemptQueue := store.NewAttemptQueue(rdb)

	// ─── Initialize Services ──────────────────────────────────────────
	questionBank := bank.New()

	aiClient := genai.NewClient(cfg, log)
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; quizzes run bank-only and the assistant is disabled")
	}

	authService := service.NewAuthService(cfg, rdb)
	accountService := service.NewAccountService(accountRepo)
	assemblerService := service.NewAssemblerService(questionBank, aiClient, log)
	quizService := service.NewQuizService(sessionStore, attemptQueue, assemblerService, questionBank, log)
	resultsService := service.NewResultsService(attemptRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, accountService),
		Admin:     handler.NewAdminHandler(accountService, authService),
		Study:     handler.NewStudyHandler(),
		Quiz:      handler.NewQuizHandler(quizService),
		Results:   handler.NewResultsHandler(resultsService),
		Assistant: handler.NewAssistantHandler(aiClient),
		WS:        handler.NewWSHandler(quizService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	attemptWorker := worker.NewAttemptWorker(attemptRepo, rdb, log)
	timeoutWorker := worker.NewTimeoutWorker(sessionStore, quizService, log)

	go attemptWorker.Start(workerCtx)
	go timeoutWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
