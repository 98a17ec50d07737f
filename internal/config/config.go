package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultPath = "./config.yml"

	// PathEnv overrides DefaultPath.
	PathEnv = "CONNECTFOUR_CONFIG"

	kindHuman = "human"
	kindBot   = "bot"
)

var (
	ErrNotEnoughPlayers = errors.New("at least two players are required")
	ErrInvalidMarker    = errors.New("marker must be a single non-space character")
	ErrDuplicateMarker  = errors.New("markers must be unique")
	ErrUnknownKind      = errors.New("player kind must be human or bot")
)

type Config struct {
	LogLevel     string     `yaml:"log-level" env:"CONNECTFOUR_LOG_LEVEL" env-default:"warn"`
	Seed         uint64     `yaml:"seed" env:"CONNECTFOUR_SEED" env-default:"0"`
	ParallelScan bool       `yaml:"parallel-scan" env:"CONNECTFOUR_PARALLEL_SCAN" env-default:"false"`
	Players      []Player   `yaml:"players"`
	Checkpoint   Checkpoint `yaml:"checkpoint"`
}

type Player struct {
	Name   string `yaml:"name"`
	Marker string `yaml:"marker"`
	Kind   string `yaml:"kind"`
}

type Checkpoint struct {
	Enabled  bool          `yaml:"enabled" env:"CONNECTFOUR_CHECKPOINT_ENABLED" env-default:"false"`
	TTL      time.Duration `yaml:"ttl" env:"CONNECTFOUR_CHECKPOINT_TTL" env-default:"24h"`
	ResumeID string        `yaml:"resume-id" env:"CONNECTFOUR_RESUME_ID"`
	Redis    Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"CONNECTFOUR_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"CONNECTFOUR_REDIS_PORT" env-default:"6379"`
}

// DefaultPlayers - one human against one bot.
func DefaultPlayers() []Player {
	return []Player{
		{Name: "Player", Marker: "x", Kind: kindHuman},
		{Name: "Computer", Marker: "o", Kind: kindBot},
	}
}

// Load reads path when it exists, otherwise environment and defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if len(config.Players) == 0 {
		config.Players = DefaultPlayers()
	}

	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if len(that.Players) < 2 {
		return ErrNotEnoughPlayers
	}

	markers := make(map[string]struct{}, len(that.Players))
	for _, player := range that.Players {
		if utf8.RuneCountInString(player.Marker) != 1 || player.Marker == " " {
			return fmt.Errorf("%w: %q", ErrInvalidMarker, player.Marker)
		}

		if _, ok := markers[player.Marker]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateMarker, player.Marker)
		}
		markers[player.Marker] = struct{}{}

		if player.Kind != kindHuman && player.Kind != kindBot {
			return fmt.Errorf("%w: %q", ErrUnknownKind, player.Kind)
		}
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
