package bestiary

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
	recordKeyPrefix = "bestiary:record:"
	recordIndexKey  = "bestiary:names"

	errRecordNil        = "record cannot be nil"
	errMonsterNameEmpty = "monster name cannot be empty"
)

// Config contains configuration for the Redis bestiary repository
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

// NewRedisRepository creates a new Redis-backed bestiary repository
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

// Get fetches a record by monster name
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.MonsterName == "" {
		return nil, errors.InvalidArgument(errMonsterNameEmpty)
	}

	result, err := r.client.Get(ctx, recordKeyPrefix+input.MonsterName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no bestiary record for %s", input.MonsterName)
		}
		return nil, errors.Wrap(err, "failed to get bestiary record")
	}

	var record entities.BestiaryRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal bestiary record")
	}

	return &GetOutput{Record: &record}, nil
}

// Create stores a new record, failing if one already exists
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.MonsterName == "" {
		return nil, errors.InvalidArgument(errMonsterNameEmpty)
	}

	key := recordKeyPrefix + input.Record.MonsterName

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check record existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("bestiary record for %s already exists", input.Record.MonsterName)
	}

	now := r.clock.Now().Unix()
	input.Record.CreatedAt = now
	input.Record.UpdatedAt = now

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal bestiary record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, recordIndexKey, input.Record.MonsterName)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create bestiary record")
	}

	return &CreateOutput{Record: input.Record}, nil
}

// Update replaces an existing record wholesale
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.MonsterName == "" {
		return nil, errors.InvalidArgument(errMonsterNameEmpty)
	}

	existing, err := r.Get(ctx, GetInput{MonsterName: input.Record.MonsterName})
	if err != nil {
		return nil, err
	}

	input.Record.CreatedAt = existing.Record.CreatedAt
	input.Record.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal bestiary record")
	}

	key := recordKeyPrefix + input.Record.MonsterName
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to update bestiary record")
	}

	return &UpdateOutput{Record: input.Record}, nil
}

// List returns every record, sorted by monster name
func (r *redisRepository) List(ctx context.Context) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, recordIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bestiary names")
	}

	records := make([]*entities.BestiaryRecord, 0, len(names))
	for _, name := range names {
		output, err := r.Get(ctx, GetInput{MonsterName: name})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, recordIndexKey, name)
				continue
			}
			return nil, err
		}
		records = append(records, output.Record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].MonsterName < records[j].MonsterName
	})

	return &ListOutput{Records: records}, nil
}
