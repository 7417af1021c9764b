package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultSourceURL is the USDA agricultural total factor productivity dataset
// as published by Our World in Data.
const DefaultSourceURL = "https://raw.githubusercontent.com/owid/owid-datasets/master/datasets/" +
	"Agricultural%20total%20factor%20productivity%20(USDA)/" +
	"Agricultural%20total%20factor%20productivity%20(USDA).csv"

const envPrefix = "AGRIEXPLORER"

type Cfg struct {
	SourceURL string        `mapstructure:"source_url"`
	CacheDir  string        `mapstructure:"cache_dir"`
	CacheFile string        `mapstructure:"cache_file"`
	Timeout   time.Duration `mapstructure:"timeout"`
	OutputDir string        `mapstructure:"output_dir"`
	Chart     Chart         `mapstructure:"chart"`
	Logger    Logger        `mapstructure:"logger"`
}

// Chart sizes are in inches.
type Chart struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type Logger struct {
	Level            string `mapstructure:"level"`
	Format           string `mapstructure:"format"`
	DisableTimestamp bool   `mapstructure:"disable_timestamp"`
}

// CachePath is the location of the cached copy of the source file.
func (c Cfg) CachePath() string {
	return filepath.Join(c.CacheDir, c.CacheFile)
}

// New returns a viper instance carrying the defaults and env bindings.
// Callers may bind command line flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefault(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result. An explicit path
// must exist; without one, a missing config.{json,yaml} in . or ./configs/ just
// leaves the defaults in place.
func Load(v *viper.Viper, path string) (Cfg, error) {
	var cfg Cfg

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, errors.Wrap(err, "reading config file")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config")
	}
	if cfg.Timeout <= 0 {
		return cfg, errors.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.CacheFile == "" {
		return cfg, errors.New("cache_file must not be empty")
	}
	return cfg, nil
}

func setDefault(v *viper.Viper) {
	v.SetDefault("source_url", DefaultSourceURL)
	v.SetDefault("cache_dir", "downloads")
	v.SetDefault("cache_file", "data.csv")
	v.SetDefault("timeout", "60s")
	v.SetDefault("output_dir", "charts")
	v.SetDefault("chart.width", 12)
	v.SetDefault("chart.height", 8)
	v.SetDefault("logger.level", "INFO")
	v.SetDefault("logger.format", "TEXT")
	v.SetDefault("logger.disable_timestamp", false)
}
