// Package standings provides repository interface and types for battle records
package standings

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=standingsmock github.com/Kyblue11/Pokemon-DSA/internal/repositories/standings Repository

// BattleRecord captures the outcome of a single finished battle
type BattleRecord struct {
	// Unique identifier for this record
	ID string

	// Names of the two competitors
	TrainerOne string
	TrainerTwo string

	// Winner is empty when the battle was a draw
	Winner string
	Draw   bool

	// Mode the battle was fought in (set, rotate, optimise)
	Mode string

	// Rounds the battle lasted
	Rounds int

	// When the record was stored
	RecordedAt time.Time
}

// RecordInput contains parameters for storing a battle record
type RecordInput struct {
	Record *BattleRecord
}

// RecordOutput contains the stored record with timestamps populated
type RecordOutput struct {
	Record *BattleRecord
}

// ListInput contains parameters for listing battle records
type ListInput struct {
	// Limit caps how many of the most recent records are returned;
	// zero means all
	Limit int
}

// ListOutput contains records ordered most recent first
type ListOutput struct {
	Records []*BattleRecord
}

// ClearInput contains parameters for clearing all battle records
type ClearInput struct{}

// ClearOutput contains the result of clearing battle records
type ClearOutput struct {
	// Removed is how many records were deleted
	Removed int
}

// Repository defines the interface for battle record storage
type Repository interface {
	// Record stores the outcome of a finished battle
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)

	// List returns stored records, most recent first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes all stored records
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
