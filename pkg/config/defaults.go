package config

// fileConfig mirrors deeplearn.yaml. Duration knobs are integer seconds so
// the file and the *_SECONDS environment variables agree. Pointer fields
// distinguish "unset" from a meaningful zero when merging over defaults.
type fileConfig struct {
	LLM         llmYAML         `yaml:"llm"`
	Queue       queueYAML       `yaml:"queue"`
	Content     contentYAML     `yaml:"content"`
	HTTP        httpYAML        `yaml:"http"`
	ObjectStore objectStoreYAML `yaml:"object_store"`
}

type llmYAML struct {
	Provider                  string   `yaml:"provider"`
	Model                     string   `yaml:"model"`
	APIKeyEnv                 string   `yaml:"api_key_env"`
	BaseURL                   string   `yaml:"base_url"`
	MaxRetries                *int     `yaml:"max_retries"`
	Concurrency               int      `yaml:"concurrency"`
	TimeoutSeconds            int      `yaml:"timeout_seconds"`
	CacheEnabled              *bool    `yaml:"cache_enabled"`
	CacheTemperatureThreshold *float64 `yaml:"cache_temperature_threshold"`
	CacheMaxEntries           int      `yaml:"cache_max_entries"`
}

type queueYAML struct {
	WorkerCount                    int `yaml:"worker_count"`
	MaxConcurrentUnits             int `yaml:"max_concurrent_units"`
	PollIntervalMillis             int `yaml:"poll_interval_ms"`
	PollIntervalJitterMillis       int `yaml:"poll_interval_jitter_ms"`
	UnitTimeoutSeconds             int `yaml:"unit_timeout_seconds"`
	GracefulShutdownTimeoutSeconds int `yaml:"graceful_shutdown_timeout_seconds"`
	HeartbeatIntervalSeconds       int `yaml:"heartbeat_interval_seconds"`
	StallDetectionIntervalSeconds  int `yaml:"stall_detection_interval_seconds"`
	StallTimeoutSeconds            int `yaml:"stall_timeout_seconds"`
}

type contentYAML struct {
	LessonParallelism      int    `yaml:"lesson_parallelism"`
	SyncUnitTimeoutSeconds int    `yaml:"sync_unit_timeout_seconds"`
	DefaultLessonCount     int    `yaml:"default_lesson_count"`
	ImageModel             string `yaml:"image_model"`
	AudioModel             string `yaml:"audio_model"`
	PodcastVoice           string `yaml:"podcast_voice"`
	MediaEnabled           *bool  `yaml:"media_enabled"`
}

type httpYAML struct {
	Port int `yaml:"port"`
}

type objectStoreYAML struct {
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	UsePathStyle *bool  `yaml:"use_path_style"`
}

// defaultFileConfig returns the built-in defaults in file shape, ready for
// the user YAML to be merged on top.
func defaultFileConfig() *fileConfig {
	maxRetries := 3
	cacheEnabled := true
	cacheThreshold := 0.2
	mediaEnabled := true
	pathStyle := false
	return &fileConfig{
		LLM: llmYAML{
			Provider:                  "openai",
			Model:                     "gpt-4o-mini",
			APIKeyEnv:                 "OPENAI_API_KEY",
			MaxRetries:                &maxRetries,
			Concurrency:               16,
			TimeoutSeconds:            120,
			CacheEnabled:              &cacheEnabled,
			CacheTemperatureThreshold: &cacheThreshold,
			CacheMaxEntries:           512,
		},
		Queue: queueYAML{
			WorkerCount:                    3,
			MaxConcurrentUnits:             3,
			PollIntervalMillis:             2000,
			PollIntervalJitterMillis:       500,
			UnitTimeoutSeconds:             1800,
			GracefulShutdownTimeoutSeconds: 60,
			HeartbeatIntervalSeconds:       30,
			StallDetectionIntervalSeconds:  60,
			StallTimeoutSeconds:            300,
		},
		Content: contentYAML{
			LessonParallelism:      3,
			SyncUnitTimeoutSeconds: 1800,
			DefaultLessonCount:     5,
			ImageModel:             "dall-e-3",
			AudioModel:             "tts-1",
			PodcastVoice:           "alloy",
			MediaEnabled:           &mediaEnabled,
		},
		HTTP: httpYAML{
			Port: 8000,
		},
		ObjectStore: objectStoreYAML{
			Region:       "us-east-1",
			UsePathStyle: &pathStyle,
		},
	}
}
