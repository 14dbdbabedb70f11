// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the CLI needs to wire the service.
type Config struct {
	// RedisAddr is the host:port of the Redis instance backing all
	// repositories.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPoolSize bounds the go-redis connection pool.
	RedisPoolSize int `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// SRDBaseURL points at the D&D 5e SRD API used to resolve monster
	// names to canonical keys. Empty disables SRD lookups.
	SRDBaseURL string `env:"SRD_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`

	// ChatLogLimit caps the recent-messages index in the chat log.
	ChatLogLimit int `env:"CHAT_LOG_LIMIT" envDefault:"200"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
