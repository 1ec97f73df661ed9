// deeplearnd serves the learning-content HTTP API, runs the unit creation
// worker pool, and executes generation flows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brianfields/deeplearn-sub002/pkg/api"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/database"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
	"github.com/brianfields/deeplearn-sub002/pkg/queue"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
	"github.com/brianfields/deeplearn-sub002/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// logLevel parses LOG_LEVEL; unknown values fall back to info.
func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env before installing the log handler so LOG_LEVEL can come
	// from it.
	envPath := filepath.Join(*configDir, ".env")
	envLoadErr := godotenv.Load(envPath)

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("LOG_LEVEL")),
	})))

	if envLoadErr != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", envLoadErr)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting deeplearnd",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database. Migrations run inside NewClient.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	units := services.NewUnitService(dbClient.Client)
	lessons := services.NewLessonService(dbClient.Client)
	assets := services.NewAssetService(dbClient.Client)
	flowRuns := services.NewFlowRunService(dbClient.Client)
	requests := services.NewLLMRequestService(dbClient.Client)
	admin := services.NewAdminService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup: units this pod abandoned in a
	// previous life go back to failed so learners are not left waiting.
	if err := queue.CleanupStartupOrphans(ctx, units, flowRuns, podID); err != nil {
		slog.Error("Failed to clean up startup orphans", "error", err)
	}

	// 5. Object store. An empty bucket disables media generation; the media
	// phase then records its failure without failing units.
	var objects objectstore.Store
	if cfg.ObjectStore.Bucket != "" {
		s3Store, err := objectstore.NewS3Store(ctx, objectstore.S3Config{
			Bucket:       cfg.ObjectStore.Bucket,
			Region:       cfg.ObjectStore.Region,
			Endpoint:     cfg.ObjectStore.Endpoint,
			UsePathStyle: cfg.ObjectStore.UsePathStyle,
		})
		if err != nil {
			slog.Error("Failed to initialize object store", "error", err)
			os.Exit(1)
		}
		objects = s3Store
		slog.Info("Object store initialized", "bucket", cfg.ObjectStore.Bucket)
	} else {
		slog.Warn("No object store bucket configured, media generation is disabled")
	}

	// 6. LLM gateway. Without an API key the service starts read-only:
	// the admin and unit read endpoints work, submissions are not processed.
	var gateway *llm.Gateway
	if apiKey := cfg.LLM.APIKey(); apiKey == "" {
		slog.Warn("No LLM API key set, starting read-only",
			"api_key_env", cfg.LLM.APIKeyEnv)
	} else {
		provider, err := llm.NewOpenAIProvider(llm.OpenAIOptions{
			APIKey:  apiKey,
			BaseURL: cfg.LLM.BaseURL,
		})
		if err != nil {
			slog.Error("Failed to initialize LLM provider", "error", err)
			os.Exit(1)
		}
		var cache llm.Cache
		if cfg.LLM.CacheEnabled {
			cache = llm.NewMemoryCache(cfg.LLM.CacheMaxEntries)
		}
		gateway = llm.NewGateway(provider, requests, cache, llm.GatewayConfig{
			DefaultModel:              cfg.LLM.Model,
			MaxRetries:                cfg.LLM.MaxRetries,
			Concurrency:               cfg.LLM.Concurrency,
			AttemptTimeout:            cfg.LLM.Timeout,
			CacheEnabled:              cfg.LLM.CacheEnabled,
			CacheTemperatureThreshold: cfg.LLM.CacheTemperatureThreshold,
		})
		slog.Info("LLM gateway initialized",
			"provider", cfg.LLM.Provider,
			"model", cfg.LLM.Model,
			"concurrency", cfg.LLM.Concurrency)
	}

	// 7. Flow engine, content flows, executor, and worker pool. All of it
	// needs the gateway; in read-only mode none of it starts.
	var executor *queue.RealUnitExecutor
	var workerPool *queue.WorkerPool
	if gateway != nil {
		engine := flow.NewEngine(flowRuns, gateway, objects, flow.EngineConfig{
			HeartbeatInterval: cfg.Queue.HeartbeatInterval,
		})
		flows := content.NewFlows(cfg.Content, assets)
		executor = queue.NewRealUnitExecutor(engine, flows, units, lessons, flowRuns, cfg.Content)

		workerPool = queue.NewWorkerPool(podID, dbClient.Client, &cfg.Queue, executor, units, flowRuns)
		if err := workerPool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "error", err)
			os.Exit(1)
		}
	}

	// 8. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, units, lessons, admin, requests, flowRuns, podID)
	if workerPool != nil {
		httpServer.SetWorkerPool(workerPool)
	}
	if executor != nil {
		httpServer.SetExecutor(executor)
	}

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("deeplearnd started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain the pool first, then the HTTP server.
	if workerPool != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)

		done := make(chan struct{})
		go func() {
			workerPool.Stop()
			close(done)
		}()

		select {
		case <-done:
			slog.Info("Worker pool stopped gracefully")
		case <-shutdownCtx.Done():
			slog.Warn("Shutdown timeout exceeded, in-flight units will be recovered as orphans")
		}
		cancel()
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
