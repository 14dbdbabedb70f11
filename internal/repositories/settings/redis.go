package settings

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
	redisclient "github.com/lorekeep/bestiary-api/internal/redis"
)

const settingsKey = "bestiary:settings"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for tier settings
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get returns the stored settings, or the defaults when nothing has been
// stored yet.
func (r *redisRepository) Get(ctx context.Context) (*GetOutput, error) {
	data, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{Settings: Default()}, nil
		}
		return nil, errors.Wrap(err, "failed to get settings from Redis")
	}

	var stored entities.TierSettings
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}
	normalize(&stored)

	return &GetOutput{Settings: &stored}, nil
}

// normalize replaces nil maps from sparse stored documents so callers
// can assign into the result directly.
func normalize(s *entities.TierSettings) {
	if s.Thresholds == nil {
		s.Thresholds = entities.TierThresholds{}
	}
	if s.Kinds == nil {
		s.Kinds = entities.TierInformationConfig{}
	}
}

// Update validates and replaces the stored settings
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := Validate(input.Settings); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal settings")
	}

	if err := r.client.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store settings in Redis")
	}

	return &UpdateOutput{Settings: input.Settings}, nil
}
