package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zenwallet/internal/app"
	"zenwallet/internal/backend"
	"zenwallet/internal/config"
	"zenwallet/internal/core"
	apphttp "zenwallet/internal/http"
	"zenwallet/internal/insight"
	applog "zenwallet/internal/log"
	"zenwallet/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{Level: cfg.SlogLevel(), Component: applog.ComponentApp})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	factory := backend.NewFactory(logger)
	result, err := factory.CreateStore(ctx, backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		StatePath:    cfg.StatePath,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize store", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Store cleanup error", applog.FieldError, err)
			}
		}()
	}

	if cfg.BudgetSeedPath != "" {
		if err := seedBudgets(ctx, result.Store, cfg.BudgetSeedPath); err != nil {
			logger.Error("Failed to seed budgets", applog.FieldError, err, "path", cfg.BudgetSeedPath)
			os.Exit(1)
		}
	}

	var source app.InsightSource
	if cfg.InsightsEnabled() {
		source = insight.New(insight.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.InsightModel,
			Timeout: cfg.InsightTimeout,
		}, logger)
		logger.Info("Insight service enabled", applog.FieldModel, cfg.InsightModel)
	} else {
		logger.Info("Insight service disabled, no API key configured")
	}

	ctrl, err := app.New(ctx, result.Store, source, logger)
	if err != nil {
		logger.Error("Failed to load application state", applog.FieldError, err)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, ctrl)

	// Configure server timeouts and limits. The write timeout leaves
	// headroom for the insight call, which can take up to InsightTimeout.
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = cfg.InsightTimeout + 10*time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting zenwallet server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// seedBudgets applies a budget list from a JSON file. The store ignores
// the seed when budgets already exist.
func seedBudgets(ctx context.Context, st store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read budget seed: %w", err)
	}
	var budgets []core.Budget
	if err := json.Unmarshal(data, &budgets); err != nil {
		return fmt.Errorf("decode budget seed: %w", err)
	}
	return st.SeedBudgets(ctx, budgets)
}
