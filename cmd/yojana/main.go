package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rahul/yojana/internal/llm"
	"github.com/rahul/yojana/internal/mock"
	"github.com/rahul/yojana/internal/observability"
	"github.com/rahul/yojana/internal/planner"
	"github.com/rahul/yojana/internal/server"
	"github.com/rahul/yojana/internal/session"
	"github.com/rahul/yojana/pkg/config"
)

func main() {
	observability.PrintBanner()
	observability.InitializeTerminal()

	// Route all log output through the terminal mutex so it never
	// interrupts the dashboard's cursor save/restore sequence.
	log.SetOutput(observability.NewTermWriter())

	cfg := config.LoadConfig("config.yaml")
	logger := observability.NewLogger(cfg.Logging.Dir)

	// Build the model client. When no provider is enabled the demo runs
	// entirely on the local generator.
	fallback := mock.New()
	var client llm.Client

	pName, pCfg := cfg.GetDefaultProvider()
	switch pName {
	case "openai", "openrouter":
		primary, err := llm.NewOpenAI(pName, pCfg.APIKey, pCfg.Model, pCfg.BaseURL)
		if err != nil {
			log.Fatal(err)
		}
		client = llm.NewFailover(primary, fallback, func(reason string) {
			observability.SetMode(observability.ModeFallback)
			logger.LogFallback(reason)
			log.Printf("model backend unavailable, switching to the local generator: %s", reason)
		})
	case "":
		log.Println("no enabled provider in config, running offline with the local generator")
		observability.SetMode(observability.ModeFallback)
		client = fallback
	default:
		log.Fatalf("Provider %s not yet implemented in main", pName)
	}

	pl := planner.New(client)
	sessions := session.NewManager(client, pl)
	srv := server.New(client, pl, sessions, logger, cfg.Server.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Live Resource Dashboard (1-second updates)
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				observability.PrintLiveStatus()
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				observability.Heartbeat()
				logger.LogHeartbeat()
			}
		}
	}()

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.App.Name, cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("\033[91m[ FAIL ] SERVER CRITICAL ERROR: %v\033[0m", err)
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)

	// Reset terminal aesthetics
	observability.CleanupTerminal()

	time.Sleep(500 * time.Millisecond)
	log.Println("\033[95m[ EXIT ] SERVER DE-INITIALIZED. GOODBYE.\033[0m")
}
