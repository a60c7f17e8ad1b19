package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ToolConfig is the per-tool section of the configuration surface. The
// engine reads it through immutable snapshots; it never writes
// configuration.
type ToolConfig struct {
	ID           string         `mapstructure:"id"`
	Name         string         `mapstructure:"name"`
	Description  string         `mapstructure:"description"`
	Enabled      bool           `mapstructure:"enabled"`
	Priority     int            `mapstructure:"priority"`
	Dependencies []string       `mapstructure:"dependencies"`
	Settings     map[string]any `mapstructure:"settings"`
}

// APIConfig locates the external bookmark backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// WorkerConfig tunes the background job worker.
type WorkerConfig struct {
	Concurrency int            `mapstructure:"concurrency"`
	Queues      map[string]int `mapstructure:"queues"`
}

// RedisConfig locates the asynq broker.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Snapshot is one immutable view of the configuration. Orchestration code
// takes a fresh snapshot per run and threads it through explicitly, so two
// concurrent runs may observe different snapshots but a single run never
// sees configuration change mid-flight.
type Snapshot struct {
	Tools        []ToolConfig    `mapstructure:"tools"`
	Environment  string          `mapstructure:"environment"`
	FeatureFlags map[string]bool `mapstructure:"feature_flags"`
	API          APIConfig       `mapstructure:"api"`
	Redis        RedisConfig     `mapstructure:"redis"`
	Worker       WorkerConfig    `mapstructure:"worker"`
}

// Tool returns the configuration for the given tool id.
func (s *Snapshot) Tool(id string) (ToolConfig, bool) {
	for _, tc := range s.Tools {
		if tc.ID == id {
			return tc, true
		}
	}
	return ToolConfig{}, false
}

// ToolPriority returns the configured priority for a tool, or 0 when the
// tool has no configuration entry.
func (s *Snapshot) ToolPriority(id string) int {
	if tc, ok := s.Tool(id); ok {
		return tc.Priority
	}
	return 0
}

// FeatureEnabled reports whether a feature flag allows the feature. A flag
// that is absent defaults to enabled.
func (s *Snapshot) FeatureEnabled(featureID string) bool {
	if enabled, ok := s.FeatureFlags[featureID]; ok {
		return enabled
	}
	return true
}

// Loader produces configuration snapshots. Load re-reads the backing file
// on every call so UI-driven toggles take effect on the next orchestrated
// run without any process restart.
type Loader struct {
	path string
}

// NewLoader returns a Loader reading config.yaml from the given directory.
// An empty path means the current directory.
func NewLoader(path string) *Loader {
	if path == "" {
		path = "."
	}
	return &Loader{path: path}
}

// Load reads the configuration file and returns a fresh snapshot. A
// missing file is not an error; defaults (plus environment overrides)
// apply instead.
func (l *Loader) Load() (*Snapshot, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.path)
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars carry the snapshot.
	}

	var snap Snapshot
	if err := v.Unmarshal(&snap); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("feature_flags", defaultFeatureFlags())
	v.SetDefault("api.base_url", "http://localhost:9001")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("worker.concurrency", 4)
	v.SetDefault("worker.queues", map[string]int{"features": 2, "default": 1})
	v.SetDefault("tools", defaultToolMaps())
}
