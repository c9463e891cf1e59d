package standings

import (
	"context"
	"sync"

	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/pkg/clock"
)

// MemoryConfig holds the configuration for the in-memory repository
type MemoryConfig struct {
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *MemoryConfig) Validate() error {
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// memoryRepository keeps battle records in process memory. Used when no
// Redis endpoint is configured.
type memoryRepository struct {
	clock clock.Clock

	mu      sync.RWMutex
	records []*BattleRecord // most recent first
}

// NewMemoryRepository creates a new in-memory repository for battle records
func NewMemoryRepository(cfg *MemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &memoryRepository{
		clock: cfg.Clock,
	}, nil
}

// Ensure memoryRepository implements Repository
var _ Repository = (*memoryRepository)(nil)

// Record stores a battle record at the head of the list
func (r *memoryRepository) Record(_ context.Context, input RecordInput) (*RecordOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	record := *input.Record
	record.RecordedAt = r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]*BattleRecord{&record}, r.records...)

	return &RecordOutput{
		Record: &record,
	}, nil
}

// List returns stored records, most recent first
func (r *memoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit cannot be negative: %d", input.Limit)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := len(r.records)
	if input.Limit > 0 && input.Limit < count {
		count = input.Limit
	}

	records := make([]*BattleRecord, count)
	for i := 0; i < count; i++ {
		clone := *r.records[i]
		records[i] = &clone
	}

	return &ListOutput{
		Records: records,
	}, nil
}

// Clear removes all stored records
func (r *memoryRepository) Clear(_ context.Context, _ ClearInput) (*ClearOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.records)
	r.records = nil

	return &ClearOutput{
		Removed: removed,
	}, nil
}
