package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/marketing-site-api/internal/api"
	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/llm"
	"github.com/marketing-site-api/internal/mail"
	"github.com/marketing-site-api/internal/service"
	"github.com/marketing-site-api/internal/store"
	"github.com/marketing-site-api/pkg/logger"
)

func main() {
	// Load .env if present, before the logger reads LOG_LEVEL
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting marketing site API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize file stores
	stores, err := store.New(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize stores")
	}

	// Initialize mail transport
	mailer, err := mail.NewSMTP(&cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize mailer")
	}

	// Initialize completion API client; the chatbot falls back to a canned
	// apology when no key is configured
	var completer llm.Completer
	if cfg.Chat.OpenAIKey != "" {
		completer = llm.NewOpenAI(cfg.Chat.OpenAIKey, cfg.Chat.Model)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, chatbot will only answer FAQ questions")
	}

	// Initialize services
	services := service.NewServices(stores, mailer, completer, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
