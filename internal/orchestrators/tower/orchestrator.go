// Package tower implements the battle tower orchestrator: a challenger
// climbs a queue of enemy trainers, fighting one rotate-mode battle per
// step until either side runs out of lives.
package tower

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/battle"
	"github.com/Kyblue11/Pokemon-DSA/internal/pkg/idgen"
	"github.com/Kyblue11/Pokemon-DSA/internal/repositories/standings"
	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
)

const (
	// Lives rolled for every trainer entering the tower
	minLives = 1
	maxLives = 3
)

// Config holds the dependencies for the tower orchestrator
type Config struct {
	BattleService battle.Service
	StandingsRepo standings.Repository

	// Templates restores teams to their base forms between battles
	Templates roster.TemplateSource

	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.StandingsRepo == nil {
		vb.RequiredField("StandingsRepo")
	}
	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type enemyState struct {
	trainer *trainer.Trainer
	lives   int
}

type run struct {
	id          string
	player      *trainer.Trainer
	playerLives int

	// enemies is the queue; index 0 is the next opponent
	enemies  []*enemyState
	defeated int

	finished   bool
	victorious bool
}

type orchestrator struct {
	battleService battle.Service
	standingsRepo standings.Repository
	templates     roster.TemplateSource
	roller        dice.Roller
	idGen         idgen.Generator

	mu   sync.Mutex
	runs map[string]*run
}

// NewOrchestrator creates a new tower orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		battleService: cfg.BattleService,
		standingsRepo: cfg.StandingsRepo,
		templates:     cfg.Templates,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
		runs:          make(map[string]*run),
	}, nil
}

// CreateRun registers the challenger and the enemy gauntlet, rolling lives
// for every trainer
func (o *orchestrator) CreateRun(_ context.Context, input *CreateRunInput) (*CreateRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerName == "" {
		vb.RequiredField("PlayerName")
	}
	if len(input.PlayerTeam) == 0 {
		vb.RequiredField("PlayerTeam")
	}
	if len(input.Enemies) == 0 {
		vb.RequiredField("Enemies")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	player := trainer.New(input.PlayerName)
	if err := player.AssignRoster(input.PlayerTeam); err != nil {
		return nil, errors.Wrapf(err, "failed to assign roster for player %s", input.PlayerName)
	}

	playerLives, err := o.rollLives()
	if err != nil {
		return nil, err
	}

	enemies := make([]*enemyState, 0, len(input.Enemies))
	for _, setup := range input.Enemies {
		if setup.Name == "" {
			return nil, errors.InvalidArgument("enemy trainer name cannot be empty")
		}

		enemy := trainer.New(setup.Name)
		if err := enemy.AssignRoster(setup.Team); err != nil {
			return nil, errors.Wrapf(err, "failed to assign roster for enemy %s", setup.Name)
		}

		lives, err := o.rollLives()
		if err != nil {
			return nil, err
		}

		enemies = append(enemies, &enemyState{trainer: enemy, lives: lives})
	}

	r := &run{
		id:          o.idGen.Generate(),
		player:      player,
		playerLives: playerLives,
		enemies:     enemies,
	}

	o.mu.Lock()
	o.runs[r.id] = r
	o.mu.Unlock()

	slog.Info("Tower run created",
		"run_id", r.id,
		"player", player.Name(),
		"player_lives", playerLives,
		"enemies", len(enemies))

	return &CreateRunOutput{Run: r.status()}, nil
}

// NextBattle fights one rotate-mode battle against the enemy at the front of
// the queue. The loser of the battle loses a life; a draw costs both sides
// one. Both teams are restored to their base forms afterwards, and a
// surviving enemy rejoins the back of the queue.
func (o *orchestrator) NextBattle(ctx context.Context, input *NextBattleInput) (*NextBattleOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	r, ok := o.runs[input.RunID]
	if !ok {
		return nil, errors.NotFoundf("tower run not found: %s", input.RunID)
	}
	if r.finished {
		return nil, errors.FailedPreconditionf("tower run %s is already finished", r.id)
	}

	enemy := r.enemies[0]

	result, err := o.battleService.Commence(ctx, &battle.CommenceInput{
		TrainerOne: r.player,
		TrainerTwo: enemy.trainer,
		Mode:       roster.ModeRotate,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "tower battle failed in run %s", r.id)
	}

	if err := r.player.Roster().Regenerate(o.templates); err != nil {
		return nil, errors.Wrapf(err, "failed to regenerate roster for player %s", r.player.Name())
	}
	if err := enemy.trainer.Roster().Regenerate(o.templates); err != nil {
		return nil, errors.Wrapf(err, "failed to regenerate roster for enemy %s", enemy.trainer.Name())
	}

	summary := &BattleSummary{
		Enemy:  enemy.trainer.Name(),
		Draw:   result.Draw,
		Rounds: result.Rounds,
	}
	if result.Winner != nil {
		summary.Winner = result.Winner.Name()
	}

	switch {
	case result.Draw:
		r.playerLives--
		enemy.lives--
	case result.Winner == r.player:
		enemy.lives--
	default:
		r.playerLives--
	}

	r.enemies = r.enemies[1:]
	if enemy.lives > 0 {
		r.enemies = append(r.enemies, enemy)
	} else {
		r.defeated++
		summary.EnemyDefeated = true
	}

	if r.playerLives <= 0 {
		r.finished = true
	} else if len(r.enemies) == 0 {
		r.finished = true
		r.victorious = true
	}

	summary.PlayerLives = r.playerLives
	summary.EnemyLives = enemy.lives

	if err := o.recordBattle(ctx, r, summary); err != nil {
		return nil, err
	}

	slog.Info("Tower battle resolved",
		"run_id", r.id,
		"enemy", summary.Enemy,
		"winner", summary.Winner,
		"draw", summary.Draw,
		"rounds", summary.Rounds,
		"player_lives", r.playerLives,
		"enemies_remaining", len(r.enemies))

	return &NextBattleOutput{
		Run:    r.status(),
		Battle: summary,
	}, nil
}

// GetRun returns the current state of a run
func (o *orchestrator) GetRun(_ context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	r, ok := o.runs[input.RunID]
	if !ok {
		return nil, errors.NotFoundf("tower run not found: %s", input.RunID)
	}

	return &GetRunOutput{Run: r.status()}, nil
}

func (o *orchestrator) rollLives() (int, error) {
	face, err := o.roller.Roll(maxLives - minLives + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll lives")
	}
	return minLives + face - 1, nil
}

func (o *orchestrator) recordBattle(ctx context.Context, r *run, summary *BattleSummary) error {
	_, err := o.standingsRepo.Record(ctx, standings.RecordInput{
		Record: &standings.BattleRecord{
			ID:         o.idGen.Generate(),
			TrainerOne: r.player.Name(),
			TrainerTwo: summary.Enemy,
			Winner:     summary.Winner,
			Draw:       summary.Draw,
			Mode:       roster.ModeRotate.String(),
			Rounds:     summary.Rounds,
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to record tower battle in run %s", r.id)
	}
	return nil
}

func (r *run) status() *RunStatus {
	return &RunStatus{
		ID:               r.id,
		Player:           r.player.Name(),
		PlayerLives:      r.playerLives,
		EnemiesRemaining: len(r.enemies),
		EnemiesDefeated:  r.defeated,
		Finished:         r.finished,
		Victorious:       r.victorious,
	}
}
