package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/isola/internal/apperror"
	"github.com/rocketscienceinc/isola/internal/isola"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	GridSize int     `yaml:"grid-size" env:"GRID_SIZE" env-default:"7"`
	Players  Players `yaml:"players"`
	Redis    Redis   `yaml:"redis"`
}

type Players struct {
	First  string `yaml:"first" env:"PLAYER_1" env-default:"PLAYER 1"`
	Second string `yaml:"second" env:"PLAYER_2" env-default:"PLAYER 2"`
}

// Redis configures the optional event relay.
type Redis struct {
	Enabled        bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port           string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ChannelPrefix  string        `yaml:"channel-prefix" env:"REDIS_CHANNEL_PREFIX" env-default:"isola"`
	PublishTimeout time.Duration `yaml:"publish-timeout" env:"REDIS_PUBLISH_TIMEOUT" env-default:"2s"`
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads the yml file at path when it exists, then the environment.
// A missing file is not an error: defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - the same board rules the engine enforces, plus non-empty names.
func (that *Config) Validate() error {
	if err := isola.ValidateSize(that.GridSize); err != nil {
		return fmt.Errorf("grid-size: %w", err)
	}

	for i, name := range that.Players.Names() {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: player %d", apperror.ErrInvalidPlayerName, i+1)
		}
	}

	return nil
}

func (that *Players) Names() [2]string {
	return [2]string{that.First, that.Second}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
