package chatlog

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
	redisclient "github.com/lorekeep/bestiary-api/internal/redis"
)

const (
	messageKeyPrefix = "chat:message:"
	recentListKey    = "chat:recent"

	defaultRecentLimit = 200

	errMessageNil     = "message cannot be nil"
	errMessageIDEmpty = "message ID cannot be empty"
)

// Config contains configuration for the Redis chat log repository
type Config struct {
	Client redisclient.Client

	// RecentLimit bounds how many message IDs the recent list retains.
	// Messages trimmed out of the window remain addressable by ID.
	RecentLimit int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if c.RecentLimit < 0 {
		return errors.InvalidArgument("recent limit cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client      redisclient.Client
	recentLimit int64
}

// NewRedisRepository creates a new Redis-backed chat log repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limit := cfg.RecentLimit
	if limit == 0 {
		limit = defaultRecentLimit
	}

	return &redisRepository{
		client:      cfg.Client,
		recentLimit: limit,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Append posts a message and trims the recent window
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Message == nil {
		return nil, errors.InvalidArgument(errMessageNil)
	}
	if input.Message.ID == "" {
		return nil, errors.InvalidArgument(errMessageIDEmpty)
	}

	data, err := json.Marshal(input.Message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal message")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, messageKeyPrefix+input.Message.ID, data, 0)
	pipe.LPush(ctx, recentListKey, input.Message.ID)
	pipe.LTrim(ctx, recentListKey, 0, r.recentLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to append message")
	}

	return &AppendOutput{Message: input.Message}, nil
}

// Get fetches a single message by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMessageIDEmpty)
	}

	result, err := r.client.Get(ctx, messageKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("message with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get message")
	}

	var message entities.ChatMessage
	if err := json.Unmarshal([]byte(result), &message); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}

	return &GetOutput{Message: &message}, nil
}

// ListRecent returns recent messages, newest first
func (r *redisRepository) ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > r.recentLimit {
		limit = r.recentLimit
	}

	ids, err := r.client.LRange(ctx, recentListKey, 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent messages")
	}

	messages := make([]*entities.ChatMessage, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		messages = append(messages, output.Message)
	}

	return &ListRecentOutput{Messages: messages}, nil
}
