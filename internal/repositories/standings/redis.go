package standings

import (
	"context"
	"encoding/json"

	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/pkg/clock"
	redisclient "github.com/Kyblue11/Pokemon-DSA/internal/redis"
)

const (
	// Single list key, most recent record first
	standingsKey = "standings:battles"

	errRecordNil = "record cannot be nil"
	errIDEmpty   = "record ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for battle records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Record stores a battle record at the head of the standings list
func (r *redisRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	record := *input.Record
	record.RecordedAt = r.clock.Now()

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle record")
	}

	if err := r.client.LPush(ctx, standingsKey, recordJSON).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store battle record in Redis")
	}

	return &RecordOutput{
		Record: &record,
	}, nil
}

// List returns stored records, most recent first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit cannot be negative: %d", input.Limit)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	raw, err := r.client.LRange(ctx, standingsKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battle records from Redis")
	}

	records := make([]*BattleRecord, 0, len(raw))
	for _, item := range raw {
		var record BattleRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal battle record")
		}
		records = append(records, &record)
	}

	return &ListOutput{
		Records: records,
	}, nil
}

// Clear removes all stored records
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	count, err := r.client.LLen(ctx, standingsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count battle records in Redis")
	}

	if err := r.client.Del(ctx, standingsKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear battle records from Redis")
	}

	return &ClearOutput{
		Removed: int(count),
	}, nil
}
