// Package config loads and validates service configuration.
//
// Defaults are built in; an optional deeplearn.yaml in the config directory
// overrides them, and well-known environment variables override scalars last
// (LLM_PROVIDER, LLM_MODEL_DEFAULT, LLM_MAX_RETRIES, LLM_CONCURRENCY,
// LLM_TIMEOUT_SECONDS, LESSON_PARALLELISM, STALL_TIMEOUT_SECONDS,
// OBJECT_STORE_BUCKET, OPENAI_BASE_URL, PORT).
package config

import (
	"os"
	"time"
)

// Config is the fully resolved, validated service configuration.
type Config struct {
	LLM         LLMConfig
	Queue       QueueConfig
	Content     ContentConfig
	HTTP        HTTPConfig
	ObjectStore ObjectStoreConfig
}

// LLMConfig controls the LLM gateway: provider selection, retry budget,
// global concurrency, per-attempt timeout, and the response cache.
type LLMConfig struct {
	// Provider selects the provider implementation. Only "openai" ships.
	Provider string

	// Model is the default model for text/structured calls. Steps may
	// override per call.
	Model string

	// APIKeyEnv names the environment variable holding the provider key.
	APIKeyEnv string

	// BaseURL overrides the provider endpoint (proxies, gateways).
	BaseURL string

	// MaxRetries is the number of additional attempts after the first,
	// spent only on rate_limited/timeout/transport_error failures.
	MaxRetries int

	// Concurrency caps in-flight provider calls across the process.
	Concurrency int

	// Timeout bounds each provider attempt.
	Timeout time.Duration

	// CacheEnabled turns the in-process response cache on.
	CacheEnabled bool

	// CacheTemperatureThreshold is the highest temperature still considered
	// deterministic enough to cache.
	CacheTemperatureThreshold float64

	// CacheMaxEntries bounds the cache size.
	CacheMaxEntries int
}

// APIKey resolves the provider API key from the configured environment
// variable. Empty when unset; validation warns but does not fail so that
// DB-only deployments (admin UI, tests) can start without a key.
func (c LLMConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// QueueConfig contains worker pool and stall detection configuration.
// These values control how pending units are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int

	// MaxConcurrentUnits is the per-process limit of units being processed
	// at once. Enforced by the pool's active registry.
	MaxConcurrentUnits int

	// PollInterval is the base interval for checking pending units.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// UnitTimeout is the maximum time one unit creation may run.
	UnitTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active units
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// HeartbeatInterval is how often running flows stamp last_heartbeat.
	HeartbeatInterval time.Duration

	// StallDetectionInterval is how often the reconciler scans for flows
	// whose heartbeat went quiet.
	StallDetectionInterval time.Duration

	// StallThreshold is how long a running flow may go without a heartbeat
	// before it is failed as stalled.
	StallThreshold time.Duration
}

// ContentConfig controls the content orchestrator.
type ContentConfig struct {
	// LessonParallelism bounds concurrent lesson flows per unit. Clamped
	// to [1,16].
	LessonParallelism int

	// SyncUnitTimeout bounds a blocking (background=false) unit creation.
	SyncUnitTimeout time.Duration

	// DefaultLessonCount is the planner hint when a submission does not
	// name a target_lesson_count.
	DefaultLessonCount int

	// ImageModel and AudioModel select the media models.
	ImageModel string
	AudioModel string

	// PodcastVoice is the TTS voice for unit podcasts.
	PodcastVoice string

	// MediaEnabled turns art/podcast generation on. Off skips the media
	// phase entirely (dev environments without media budgets).
	MediaEnabled bool
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Port int
}

// ObjectStoreConfig contains media blob storage settings. An empty bucket
// disables the S3 store; media steps then refuse to run.
type ObjectStoreConfig struct {
	Bucket string
	Region string

	// Endpoint overrides the S3 endpoint (minio, localstack).
	Endpoint string

	// UsePathStyle forces path-style addressing, required by most
	// S3-compatible stores.
	UsePathStyle bool
}

// Bounds for LessonParallelism.
const (
	MinLessonParallelism = 1
	MaxLessonParallelism = 16
)
