package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBPath     string `env:"DB_PATH" envDefault:"casino.db"`
	APIKey     string `env:"API_KEY,required"`
	AdminToken string `env:"ADMIN_TOKEN,required"`
	OwnerToken string `env:"OWNER_TOKEN,required"`

	// RedisAddr switches blackjack round storage to redis when set.
	// Empty means the in-memory store plus the expiry sweeper job.
	RedisAddr string        `env:"REDIS_ADDR"`
	RoundTTL  time.Duration `env:"ROUND_TTL" envDefault:"30m"`

	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
