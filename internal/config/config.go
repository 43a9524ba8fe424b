package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	localConfigFile = "config.yml"
	xdgConfigFile   = "tictactoe/config.yml"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Engine   Engine `yaml:"engine"`
	Redis    Redis  `yaml:"redis"`
}

type Engine struct {
	HumanMark string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_REDIS_TTL" env-default:"24h"`
}

// Load reads path, or only the environment and defaults when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

// Path picks the config file: ./config.yml first, then $XDG_CONFIG_HOME/tictactoe/config.yml.
// An empty result means no file was found.
func Path() string {
	if _, err := os.Stat(localConfigFile); err == nil {
		return localConfigFile
	}

	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}

	return ""
}

func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %s", ErrUnknownLogLevel, that.LogLevel)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
