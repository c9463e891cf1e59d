package tower

import (
	"context"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=towermock github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/tower Service

// Service defines the interface for battle tower runs
type Service interface {
	// CreateRun registers a challenger and a gauntlet of enemy trainers,
	// rolling lives for every trainer
	CreateRun(ctx context.Context, input *CreateRunInput) (*CreateRunOutput, error)

	// NextBattle fights the challenger against the enemy at the front of
	// the queue and applies the outcome to the run
	NextBattle(ctx context.Context, input *NextBattleInput) (*NextBattleOutput, error)

	// GetRun returns the current state of a run
	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)
}

// EnemySetup describes one enemy trainer waiting in the tower
type EnemySetup struct {
	Name string
	Team []*entities.Pokemon
}

// CreateRunInput contains the challenger and the enemy gauntlet
type CreateRunInput struct {
	PlayerName string
	PlayerTeam []*entities.Pokemon
	Enemies    []EnemySetup
}

// CreateRunOutput contains the freshly created run
type CreateRunOutput struct {
	Run *RunStatus
}

// NextBattleInput identifies the run to advance
type NextBattleInput struct {
	RunID string
}

// NextBattleOutput contains the battle summary and the updated run state
type NextBattleOutput struct {
	Run    *RunStatus
	Battle *BattleSummary
}

// GetRunInput identifies the run to inspect
type GetRunInput struct {
	RunID string
}

// GetRunOutput contains the run state
type GetRunOutput struct {
	Run *RunStatus
}

// RunStatus is a snapshot of a tower run
type RunStatus struct {
	ID               string
	Player           string
	PlayerLives      int
	EnemiesRemaining int
	EnemiesDefeated  int
	Finished         bool
	Victorious       bool
}

// BattleSummary reports one tower battle's outcome
type BattleSummary struct {
	Enemy string

	// Winner is empty on a draw
	Winner string
	Draw   bool

	Rounds int

	// Lives after the outcome was applied
	PlayerLives int
	EnemyLives  int

	// EnemyDefeated reports whether the enemy ran out of lives and left
	// the tower
	EnemyDefeated bool
}
