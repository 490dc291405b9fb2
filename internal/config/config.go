package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Leads      LeadsConfig      `yaml:"leads" mapstructure:"leads"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Checkpoint CheckpointConfig `yaml:"checkpoint" mapstructure:"checkpoint"`
	Fetch      FetchConfig      `yaml:"fetch" mapstructure:"fetch"`
	Search     SearchConfig     `yaml:"search" mapstructure:"search"`
	Batch      BatchConfig      `yaml:"batch" mapstructure:"batch"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// LeadsConfig configures the lead list input.
type LeadsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// OutputConfig configures where profile artifacts are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// CheckpointConfig configures the progress store backend.
type CheckpointConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"` // "file" or "sqlite"
	Path   string `yaml:"path" mapstructure:"path"`
}

// FetchConfig configures the website fetcher.
type FetchConfig struct {
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRedirects int    `yaml:"max_redirects" mapstructure:"max_redirects"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	UserAgent    string `yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig configures the search-engine fallback.
type SearchConfig struct {
	BaseURL    string `yaml:"base_url" mapstructure:"base_url"`
	CooldownMS int    `yaml:"cooldown_ms" mapstructure:"cooldown_ms"`
	MinBytes   int    `yaml:"min_bytes" mapstructure:"min_bytes"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	DelayMS   int     `yaml:"delay_ms" mapstructure:"delay_ms"`
	MinRating float64 `yaml:"min_rating" mapstructure:"min_rating"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// FetchTimeout returns the per-attempt fetch timeout as a duration.
func (c FetchConfig) FetchTimeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// Cooldown returns the post-search cooldown as a duration.
func (c SearchConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// Delay returns the inter-item delay as a duration.
func (c BatchConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BRANDKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("leads.path", "leads.csv")
	v.SetDefault("output.dir", "configs")
	v.SetDefault("checkpoint.driver", "file")
	v.SetDefault("checkpoint.path", "progress.json")
	v.SetDefault("fetch.timeout_secs", 10)
	v.SetDefault("fetch.max_redirects", 2)
	v.SetDefault("fetch.max_body_bytes", 200_000)
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (compatible; BrandkitBot/1.0)")
	v.SetDefault("search.base_url", "https://www.google.com/search")
	v.SetDefault("search.cooldown_ms", 1000)
	v.SetDefault("search.min_bytes", 500)
	v.SetDefault("batch.delay_ms", 800)
	v.SetDefault("batch.min_rating", 3.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
