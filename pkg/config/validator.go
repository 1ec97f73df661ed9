package config

import (
	"fmt"
	"log/slog"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateContent(); err != nil {
		return fmt.Errorf("content validation failed: %w", err)
	}
	if err := v.validateHTTP(); err != nil {
		return fmt.Errorf("http validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	c := v.cfg.LLM
	if c.Provider != "openai" {
		return NewValidationError("llm.provider", fmt.Sprintf("unknown provider %q, supported: openai", c.Provider))
	}
	if c.Model == "" {
		return NewValidationError("llm.model", "must not be empty")
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return NewValidationError("llm.max_retries", fmt.Sprintf("must be between 0 and 10, got %d", c.MaxRetries))
	}
	if c.Concurrency < 1 {
		return NewValidationError("llm.concurrency", fmt.Sprintf("must be at least 1, got %d", c.Concurrency))
	}
	if c.Timeout <= 0 {
		return NewValidationError("llm.timeout_seconds", "must be positive")
	}
	if c.CacheTemperatureThreshold < 0 || c.CacheTemperatureThreshold > 2 {
		return NewValidationError("llm.cache_temperature_threshold", "must be between 0 and 2")
	}
	if c.CacheEnabled && c.CacheMaxEntries < 1 {
		return NewValidationError("llm.cache_max_entries", "must be at least 1 when caching is enabled")
	}
	if c.APIKey() == "" {
		slog.Warn("LLM API key is not set; provider calls will fail", "env", c.APIKeyEnv)
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue.worker_count", fmt.Sprintf("must be at least 1, got %d", q.WorkerCount))
	}
	if q.MaxConcurrentUnits < 1 {
		return NewValidationError("queue.max_concurrent_units", fmt.Sprintf("must be at least 1, got %d", q.MaxConcurrentUnits))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue.poll_interval_ms", "must be positive")
	}
	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue.poll_interval_jitter_ms", "must be non-negative")
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return NewValidationError("queue.poll_interval_jitter_ms", "must be less than poll_interval_ms")
	}
	if q.UnitTimeout <= 0 {
		return NewValidationError("queue.unit_timeout_seconds", "must be positive")
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue.heartbeat_interval_seconds", "must be positive")
	}
	if q.StallThreshold <= 0 {
		return NewValidationError("queue.stall_timeout_seconds", "must be positive")
	}
	if q.StallThreshold < 2*q.HeartbeatInterval {
		return NewValidationError("queue.stall_timeout_seconds",
			fmt.Sprintf("must be at least twice the heartbeat interval (%s)", q.HeartbeatInterval))
	}
	if q.StallDetectionInterval <= 0 {
		return NewValidationError("queue.stall_detection_interval_seconds", "must be positive")
	}
	return nil
}

func (v *ConfigValidator) validateContent() error {
	c := v.cfg.Content
	// LessonParallelism is clamped at resolve time; a violation here means a bug.
	if c.LessonParallelism < MinLessonParallelism || c.LessonParallelism > MaxLessonParallelism {
		return NewValidationError("content.lesson_parallelism",
			fmt.Sprintf("must be between %d and %d, got %d", MinLessonParallelism, MaxLessonParallelism, c.LessonParallelism))
	}
	if c.SyncUnitTimeout <= 0 {
		return NewValidationError("content.sync_unit_timeout_seconds", "must be positive")
	}
	if c.DefaultLessonCount < 1 {
		return NewValidationError("content.default_lesson_count", "must be at least 1")
	}
	if c.MediaEnabled {
		if c.ImageModel == "" {
			return NewValidationError("content.image_model", "must not be empty when media is enabled")
		}
		if c.AudioModel == "" {
			return NewValidationError("content.audio_model", "must not be empty when media is enabled")
		}
		if v.cfg.ObjectStore.Bucket == "" {
			slog.Warn("media generation enabled without an object store bucket; media steps will be skipped")
		}
	}
	return nil
}

func (v *ConfigValidator) validateHTTP() error {
	if v.cfg.HTTP.Port < 1 || v.cfg.HTTP.Port > 65535 {
		return NewValidationError("http.port", fmt.Sprintf("must be a valid port, got %d", v.cfg.HTTP.Port))
	}
	return nil
}
