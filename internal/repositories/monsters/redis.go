package monsters

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
	"github.com/lorekeep/bestiary-api/internal/pkg/clock"
	redisclient "github.com/lorekeep/bestiary-api/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"
	monsterIndexKey  = "monster:ids"

	errMonsterNil     = "monster cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
)

// Config contains configuration for the Redis monster repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis-backed monster repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Put stores a stat block, replacing any existing one with the same ID.
// CreatedAt is stamped on first write only; UpdatedAt on every write.
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	now := r.clock.Now().Unix()
	if input.Monster.CreatedAt == 0 {
		input.Monster.CreatedAt = now
	}
	input.Monster.UpdatedAt = now

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, monsterKeyPrefix+input.Monster.ID, data, 0)
	pipe.SAdd(ctx, monsterIndexKey, input.Monster.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store monster")
	}

	return &PutOutput{Monster: input.Monster}, nil
}

// Get fetches a stat block by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	result, err := r.client.Get(ctx, monsterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get monster")
	}

	var monster entities.MonsterStatBlock
	if err := json.Unmarshal([]byte(result), &monster); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal monster")
	}

	return &GetOutput{Monster: &monster}, nil
}

// List returns every stored stat block, sorted by name
func (r *redisRepository) List(ctx context.Context) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, monsterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monster IDs")
	}

	monsters := make([]*entities.MonsterStatBlock, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Index entry with no backing record, clean it up
				r.client.SRem(ctx, monsterIndexKey, id)
				continue
			}
			return nil, err
		}
		monsters = append(monsters, output.Monster)
	}

	sort.Slice(monsters, func(i, j int) bool {
		return monsters[i].Name < monsters[j].Name
	})

	return &ListOutput{Monsters: monsters}, nil
}
