// Package e2e spins up the whole service against a real PostgreSQL schema
// and a scripted LLM provider, then drives it through the HTTP API the way a
// client would: submissions, polling, cancellation, and the admin read model.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/pkg/api"
	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/content"
	"github.com/brianfields/deeplearn-sub002/pkg/database"
	"github.com/brianfields/deeplearn-sub002/pkg/flow"
	"github.com/brianfields/deeplearn-sub002/pkg/llm"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/brianfields/deeplearn-sub002/pkg/objectstore"
	"github.com/brianfields/deeplearn-sub002/pkg/queue"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
	testdb "github.com/brianfields/deeplearn-sub002/test/database"
)

// TestApp is one fully wired service instance: database, services, gateway
// over the scripted provider, engine, executor, worker pool, and an httptest
// server in front of the router. Mirrors the wiring in cmd/deeplearnd.
type TestApp struct {
	Config   *config.Config
	DB       *database.Client
	Ent      *ent.Client
	Provider *scriptedProvider
	Pool     *queue.WorkerPool
	BaseURL  string
}

type testAppParams struct {
	cfg             *config.Config
	plan            models.UnitPlan
	engineHeartbeat time.Duration
	podID           string
}

// TestAppOption customizes the app before it starts.
type TestAppOption func(*testAppParams)

// WithConfig mutates the default test configuration.
func WithConfig(mutate func(*config.Config)) TestAppOption {
	return func(p *testAppParams) { mutate(p.cfg) }
}

// WithPlan sets the unit plan the scripted provider answers with.
func WithPlan(plan models.UnitPlan) TestAppOption {
	return func(p *testAppParams) { p.plan = plan }
}

// WithEngineHeartbeat overrides how often running flows stamp
// last_heartbeat. Stall tests stretch it so the heartbeat freezes.
func WithEngineHeartbeat(d time.Duration) TestAppOption {
	return func(p *testAppParams) { p.engineHeartbeat = d }
}

// WithPodID overrides the pod identity the pool and API claim units under.
func WithPodID(podID string) TestAppOption {
	return func(p *testAppParams) { p.podID = podID }
}

func defaultTestConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			MaxRetries:  0,
			Concurrency: 4,
			Timeout:     30 * time.Second,
		},
		Queue: config.QueueConfig{
			WorkerCount:             2,
			MaxConcurrentUnits:      4,
			PollInterval:            50 * time.Millisecond,
			PollIntervalJitter:      10 * time.Millisecond,
			UnitTimeout:             60 * time.Second,
			GracefulShutdownTimeout: 5 * time.Second,
			HeartbeatInterval:       200 * time.Millisecond,
			StallDetectionInterval:  1 * time.Second,
			StallThreshold:          30 * time.Second,
		},
		Content: config.ContentConfig{
			LessonParallelism:  1,
			SyncUnitTimeout:    60 * time.Second,
			DefaultLessonCount: 2,
			ImageModel:         "img-test",
			AudioModel:         "tts-test",
			PodcastVoice:       "alloy",
		},
		ObjectStore: config.ObjectStoreConfig{Bucket: "test-bucket"},
	}
}

// NewTestApp starts a full service instance on its own database schema.
// Cleanup stops the HTTP server, cancels in-flight executions, and drains
// the pool.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	params := &testAppParams{
		cfg:             defaultTestConfig(),
		plan:            gradientPlan(2),
		engineHeartbeat: 200 * time.Millisecond,
		podID:           "e2e-pod-1",
	}
	for _, opt := range opts {
		opt(params)
	}
	cfg := params.cfg

	db := testdb.NewTestClient(t)
	client := db.Client

	units := services.NewUnitService(client)
	lessons := services.NewLessonService(client)
	assets := services.NewAssetService(client)
	flowRuns := services.NewFlowRunService(client)
	requests := services.NewLLMRequestService(client)
	admin := services.NewAdminService(client)

	provider := newScriptedProvider(params.plan)
	var cache llm.Cache
	if cfg.LLM.CacheEnabled {
		cache = llm.NewMemoryCache(cfg.LLM.CacheMaxEntries)
	}
	gateway := llm.NewGateway(provider, requests, cache, llm.GatewayConfig{
		DefaultModel:              cfg.LLM.Model,
		MaxRetries:                cfg.LLM.MaxRetries,
		Concurrency:               cfg.LLM.Concurrency,
		AttemptTimeout:            cfg.LLM.Timeout,
		CacheEnabled:              cfg.LLM.CacheEnabled,
		CacheTemperatureThreshold: cfg.LLM.CacheTemperatureThreshold,
	})

	engine := flow.NewEngine(flowRuns, gateway, objectstore.NewMemory(cfg.ObjectStore.Bucket), flow.EngineConfig{
		HeartbeatInterval: params.engineHeartbeat,
	})
	flows := content.NewFlows(cfg.Content, assets)
	executor := queue.NewRealUnitExecutor(engine, flows, units, lessons, flowRuns, cfg.Content)

	pool := queue.NewWorkerPool(params.podID, client, &cfg.Queue, executor, units, flowRuns)
	poolCtx, cancelPool := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(poolCtx))

	server := api.NewServer(cfg, db, units, lessons, admin, requests, flowRuns, params.podID)
	server.SetWorkerPool(pool)
	server.SetExecutor(executor)
	ts := httptest.NewServer(server.Routes())

	t.Cleanup(func() {
		ts.Close()
		cancelPool()
		pool.Stop()
	})

	return &TestApp{
		Config:   cfg,
		DB:       db,
		Ent:      client,
		Provider: provider,
		Pool:     pool,
		BaseURL:  ts.URL,
	}
}
