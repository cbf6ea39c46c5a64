package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	StorePath    string `env:"STORE_PATH" envDefault:"accounts.csv"`
	SeedAccounts int    `env:"SEED_ACCOUNTS" envDefault:"20"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	AppEnv       string `env:"APP_ENV" envDefault:"production"`
}

// Load reads configuration from the environment, with a .env file layered
// in first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.SeedAccounts < 0 {
		return nil, fmt.Errorf("config.Load: SEED_ACCOUNTS must not be negative, got %d", cfg.SeedAccounts)
	}
	return &cfg, nil
}
