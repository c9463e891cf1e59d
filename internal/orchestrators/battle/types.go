package battle

import (
	"context"

	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
)

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/battle Service

// Service defines the interface for running battles
type Service interface {
	// Commence runs a full battle between two trainers and reports the
	// outcome
	Commence(ctx context.Context, input *CommenceInput) (*CommenceOutput, error)
}

// CommenceInput contains the two competitors and the battle configuration
type CommenceInput struct {
	TrainerOne *trainer.Trainer
	TrainerTwo *trainer.Trainer
	Mode       roster.BattleMode

	// Criterion keys the priority ordering; required for optimise mode,
	// ignored otherwise
	Criterion roster.Criterion
}

// CommenceOutput contains the battle result
type CommenceOutput struct {
	// Winner is the trainer with combatants left, nil when the battle was
	// a draw
	Winner *trainer.Trainer
	Draw   bool
	Rounds int
}
