package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AdminName     string `env:"ADMIN_NAME" envDefault:"lucas"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@marketplace.local"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	MatchSize     int    `env:"MATCH_SIZE" envDefault:"2"`
	SeedDemo      bool   `env:"SEED_DEMO" envDefault:"true"`
}

// Load reads configuration from the environment, falling back to the demo
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
