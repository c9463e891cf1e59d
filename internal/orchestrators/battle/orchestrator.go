// Package battle implements the battle orchestrator that drives two trainers'
// rosters through rounds of combat until one side has no pokemon left.
package battle

import (
	"context"
	"math"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
	"github.com/Kyblue11/Pokemon-DSA/internal/typechart"
)

// chipDamage is dealt to both front pokemon at the end of a round where
// neither side fainted, so stalemates cannot run forever.
const chipDamage = 2.0

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Chart *typechart.Chart

	// Narrator receives play-by-play events; defaults to NopNarrator
	Narrator Narrator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Chart == nil {
		vb.RequiredField("Chart")
	}

	return vb.Build()
}

type orchestrator struct {
	chart    *typechart.Chart
	narrator Narrator
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	narrator := cfg.Narrator
	if narrator == nil {
		narrator = NopNarrator{}
	}

	return &orchestrator{
		chart:    cfg.Chart,
		narrator: narrator,
	}, nil
}

// Commence runs a battle to completion. Both trainers' rosters are assembled
// in the requested mode before the first round; the loop then alternates
// between clashes and the mode's between-round bookkeeping until at least one
// roster is empty.
func (o *orchestrator) Commence(ctx context.Context, input *CommenceInput) (*CommenceOutput, error) {
	if err := o.validateInput(input); err != nil {
		return nil, err
	}

	one, two := input.TrainerOne, input.TrainerTwo

	if err := one.Roster().Assemble(input.Mode, input.Criterion); err != nil {
		return nil, errors.Wrapf(err, "failed to assemble roster for trainer %s", one.Name())
	}
	if err := two.Roster().Assemble(input.Mode, input.Criterion); err != nil {
		return nil, errors.Wrapf(err, "failed to assemble roster for trainer %s", two.Name())
	}

	o.narrator.BattleStarted(one, two)

	rounds := 0
	for one.Roster().Size() > 0 && two.Roster().Size() > 0 {
		rounds++

		frontOne, err := one.Roster().Front()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get front pokemon for trainer %s", one.Name())
		}
		frontTwo, err := two.Roster().Front()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get front pokemon for trainer %s", two.Name())
		}

		o.narrator.RoundStarted(rounds, frontOne, frontTwo)

		// Each trainer registers the opposing pokemon's type every round,
		// even when the same pokemon stays up front.
		one.RegisterType(frontTwo.Type)
		two.RegisterType(frontOne.Type)

		if err := o.clash(frontOne, frontTwo, one, two); err != nil {
			return nil, err
		}

		if err := o.betweenRounds(input.Mode, input.Criterion, frontOne, frontTwo, one, two); err != nil {
			return nil, err
		}
	}

	output := &CommenceOutput{Rounds: rounds}
	switch {
	case one.Roster().Size() > 0:
		output.Winner = one
	case two.Roster().Size() > 0:
		output.Winner = two
	default:
		output.Draw = true
	}

	o.narrator.BattleEnded(output.Winner, output.Draw, rounds)

	return output, nil
}

func (o *orchestrator) validateInput(input *CommenceInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.TrainerOne == nil {
		vb.RequiredField("TrainerOne")
	}
	if input.TrainerTwo == nil {
		vb.RequiredField("TrainerTwo")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if !input.Mode.Valid() {
		return errors.InvalidArgumentf("invalid battle mode: %d", input.Mode)
	}

	for _, t := range []*trainer.Trainer{input.TrainerOne, input.TrainerTwo} {
		if t.Roster() == nil {
			return errors.FailedPreconditionf("trainer %s has no roster", t.Name())
		}
		if t.Roster().Size() == 0 {
			return errors.FailedPreconditionf("trainer %s has an empty roster", t.Name())
		}
	}

	return nil
}

// clash resolves one round of combat between the two front pokemon. With
// distinct speeds the faster attacks first and the slower only retaliates if
// it survived; with equal speeds both attacks resolve unconditionally, which
// can faint both sides in the same round.
func (o *orchestrator) clash(frontOne, frontTwo *entities.Pokemon, one, two *trainer.Trainer) error {
	if frontOne.Speed != frontTwo.Speed {
		first, second := frontOne, frontTwo
		firstOwner, secondOwner := one, two
		if frontTwo.Speed > frontOne.Speed {
			first, second = frontTwo, frontOne
			firstOwner, secondOwner = two, one
		}

		if err := o.attack(first, second, firstOwner, secondOwner); err != nil {
			return err
		}
		if second.IsAlive() {
			if err := o.attack(second, first, secondOwner, firstOwner); err != nil {
				return err
			}
		}
	} else {
		if err := o.attack(frontOne, frontTwo, one, two); err != nil {
			return err
		}
		if err := o.attack(frontTwo, frontOne, two, one); err != nil {
			return err
		}
	}

	if frontOne.IsAlive() && frontTwo.IsAlive() {
		return o.chip(frontOne, frontTwo, one, two)
	}

	return nil
}

// attack resolves a single strike: raw damage from the attacker, scaled by
// the ratio of the owners' pokedex completions, rounded up, then defended.
// A pokemon fainted by a direct attack is removed without its killer
// leveling up.
func (o *orchestrator) attack(attacker, defender *entities.Pokemon, attackerOwner, defenderOwner *trainer.Trainer) error {
	raw := attacker.Attack(defender, o.chart)
	raw *= attackerOwner.Completion() / defenderOwner.Completion()
	damage := math.Ceil(raw)

	defender.Defend(damage)
	o.narrator.AttackLanded(attacker, defender, damage)

	if !defender.IsAlive() {
		return o.faint(defender, defenderOwner)
	}

	return nil
}

// chip applies the end-of-round attrition when both front pokemon survived
// the exchange. A pokemon that outlasts its opponent through chip damage
// levels up; if chip damage faints both, neither does.
func (o *orchestrator) chip(frontOne, frontTwo *entities.Pokemon, one, two *trainer.Trainer) error {
	frontOne.Defend(chipDamage)
	frontTwo.Defend(chipDamage)

	switch {
	case !frontOne.IsAlive() && !frontTwo.IsAlive():
		if err := o.faint(frontOne, one); err != nil {
			return err
		}
		return o.faint(frontTwo, two)
	case !frontOne.IsAlive():
		if err := o.faint(frontOne, one); err != nil {
			return err
		}
		o.levelUp(frontTwo)
	case !frontTwo.IsAlive():
		if err := o.faint(frontTwo, two); err != nil {
			return err
		}
		o.levelUp(frontOne)
	}

	return nil
}

func (o *orchestrator) faint(pokemon *entities.Pokemon, owner *trainer.Trainer) error {
	if _, err := owner.Roster().PopFront(); err != nil {
		return errors.Wrapf(err, "failed to remove fainted pokemon for trainer %s", owner.Name())
	}
	o.narrator.Fainted(pokemon, owner)
	return nil
}

func (o *orchestrator) levelUp(pokemon *entities.Pokemon) {
	previous := pokemon.Name
	pokemon.LevelUp()
	o.narrator.LeveledUp(pokemon, previous)
}

// betweenRounds applies the mode's bookkeeping after a clash. Set mode keeps
// the survivor up front; rotate mode cycles each surviving front pokemon to
// the back; optimise mode resorts both rosters so damage taken during the
// round is reflected in the ordering.
func (o *orchestrator) betweenRounds(mode roster.BattleMode, criterion roster.Criterion, frontOne, frontTwo *entities.Pokemon, one, two *trainer.Trainer) error {
	switch mode {
	case roster.ModeSet:
		return nil
	case roster.ModeRotate:
		if frontOne.IsAlive() && one.Roster().Size() > 0 {
			if err := one.Roster().Rotate(); err != nil {
				return errors.Wrapf(err, "failed to rotate roster for trainer %s", one.Name())
			}
		}
		if frontTwo.IsAlive() && two.Roster().Size() > 0 {
			if err := two.Roster().Rotate(); err != nil {
				return errors.Wrapf(err, "failed to rotate roster for trainer %s", two.Name())
			}
		}
		return nil
	case roster.ModeOptimise:
		if one.Roster().Size() > 0 {
			if err := one.Roster().Resort(criterion); err != nil {
				return errors.Wrapf(err, "failed to resort roster for trainer %s", one.Name())
			}
		}
		if two.Roster().Size() > 0 {
			if err := two.Roster().Resort(criterion); err != nil {
				return errors.Wrapf(err, "failed to resort roster for trainer %s", two.Name())
			}
		}
		return nil
	default:
		return errors.InvalidArgumentf("invalid battle mode: %d", mode)
	}
}
