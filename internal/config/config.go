package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	PublicURL  string    `yaml:"public-url" env:"PUBLIC_URL" env-default:"http://localhost:8080"`
	Redis      Redis     `yaml:"redis"`
	Game       Game      `yaml:"game"`
	Challenge  Challenge `yaml:"challenge"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"1h"`
}

type Game struct {
	WinRule       string `yaml:"win-rule" env:"GAME_WIN_RULE" env-default:"capped"`
	DiagonalScope string `yaml:"diagonal-scope" env:"GAME_DIAGONAL_SCOPE" env-default:"any"`
}

// Challenge configures the truth or dare flow. Empty prompt lists fall back to
// the built-in bank; a zero seed means a time based seed.
type Challenge struct {
	Seed     uint64   `yaml:"seed" env:"CHALLENGE_SEED" env-default:"0"`
	MinWords int      `yaml:"min-words" env:"CHALLENGE_MIN_WORDS" env-default:"3"`
	MinLines int      `yaml:"min-lines" env:"CHALLENGE_MIN_LINES" env-default:"1"`
	Truths   []string `yaml:"truths"`
	Dares    []string `yaml:"dares"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
