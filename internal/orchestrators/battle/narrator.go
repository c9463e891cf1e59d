package battle

import (
	"log/slog"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
)

// Narrator receives play-by-play events as a battle unfolds. Implementations
// must not mutate the pokemon or trainers they are handed.
type Narrator interface {
	BattleStarted(one, two *trainer.Trainer)
	RoundStarted(round int, one, two *entities.Pokemon)
	AttackLanded(attacker, defender *entities.Pokemon, damage float64)
	Fainted(pokemon *entities.Pokemon, owner *trainer.Trainer)
	LeveledUp(pokemon *entities.Pokemon, previousName string)
	BattleEnded(winner *trainer.Trainer, draw bool, rounds int)
}

// NopNarrator discards all events
type NopNarrator struct{}

func (NopNarrator) BattleStarted(_, _ *trainer.Trainer)             {}
func (NopNarrator) RoundStarted(_ int, _, _ *entities.Pokemon)      {}
func (NopNarrator) AttackLanded(_, _ *entities.Pokemon, _ float64)  {}
func (NopNarrator) Fainted(_ *entities.Pokemon, _ *trainer.Trainer) {}
func (NopNarrator) LeveledUp(_ *entities.Pokemon, _ string)         {}
func (NopNarrator) BattleEnded(_ *trainer.Trainer, _ bool, _ int)   {}

// LogNarrator reports battle events through slog at debug level
type LogNarrator struct{}

func (LogNarrator) BattleStarted(one, two *trainer.Trainer) {
	slog.Debug("Battle started",
		"trainer_one", one.Name(),
		"trainer_two", two.Name())
}

func (LogNarrator) RoundStarted(round int, one, two *entities.Pokemon) {
	slog.Debug("Round started",
		"round", round,
		"pokemon_one", one.Name,
		"pokemon_two", two.Name)
}

func (LogNarrator) AttackLanded(attacker, defender *entities.Pokemon, damage float64) {
	slog.Debug("Attack landed",
		"attacker", attacker.Name,
		"defender", defender.Name,
		"damage", damage,
		"defender_health", defender.Health)
}

func (LogNarrator) Fainted(pokemon *entities.Pokemon, owner *trainer.Trainer) {
	slog.Debug("Pokemon fainted",
		"pokemon", pokemon.Name,
		"owner", owner.Name())
}

func (LogNarrator) LeveledUp(pokemon *entities.Pokemon, previousName string) {
	slog.Debug("Pokemon leveled up",
		"pokemon", pokemon.Name,
		"was", previousName,
		"level", pokemon.Level)
}

func (LogNarrator) BattleEnded(winner *trainer.Trainer, draw bool, rounds int) {
	if draw {
		slog.Debug("Battle ended in a draw", "rounds", rounds)
		return
	}
	slog.Debug("Battle ended", "winner", winner.Name(), "rounds", rounds)
}
