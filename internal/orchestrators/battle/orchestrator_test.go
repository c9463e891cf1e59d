package battle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/battle"
	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
	"github.com/Kyblue11/Pokemon-DSA/internal/typechart"
)

// recordingNarrator captures the narration stream for order assertions
type recordingNarrator struct {
	rounds  [][2]string
	fainted []string
	leveled []string
}

func (n *recordingNarrator) BattleStarted(_, _ *trainer.Trainer) {}

func (n *recordingNarrator) RoundStarted(_ int, one, two *entities.Pokemon) {
	n.rounds = append(n.rounds, [2]string{one.Name, two.Name})
}

func (n *recordingNarrator) AttackLanded(_, _ *entities.Pokemon, _ float64) {}

func (n *recordingNarrator) Fainted(p *entities.Pokemon, _ *trainer.Trainer) {
	n.fainted = append(n.fainted, p.Name)
}

func (n *recordingNarrator) LeveledUp(p *entities.Pokemon, _ string) {
	n.leveled = append(n.leveled, p.Name)
}

func (n *recordingNarrator) BattleEnded(_ *trainer.Trainer, _ bool, _ int) {}

type OrchestratorTestSuite struct {
	suite.Suite
	chart    *typechart.Chart
	narrator *recordingNarrator
	service  battle.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.chart = typechart.Default()
	s.narrator = &recordingNarrator{}

	service, err := battle.NewOrchestrator(&battle.Config{
		Chart:    s.chart,
		Narrator: s.narrator,
	})
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

// normal spawns a normal-type combatant so every matchup multiplies at 1x
func normal(name string, health, power, defence, speed float64) *entities.Pokemon {
	return &entities.Pokemon{
		Name:        name,
		Level:       1,
		Health:      health,
		BattlePower: power,
		Defence:     defence,
		Speed:       speed,
		Type:        entities.TypeNormal,
	}
}

func (s *OrchestratorTestSuite) newTrainer(name string, members ...*entities.Pokemon) *trainer.Trainer {
	t := trainer.New(name)
	s.Require().NoError(t.AssignRoster(members))
	return t
}

func (s *OrchestratorTestSuite) TestValidation() {
	one := s.newTrainer("Ash", normal("a", 10, 5, 5, 5))
	two := s.newTrainer("Gary", normal("b", 10, 5, 5, 5))

	s.Run("nil input", func() {
		_, err := s.service.Commence(s.ctx, nil)
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing trainer", func() {
		_, err := s.service.Commence(s.ctx, &battle.CommenceInput{TrainerOne: one})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid mode", func() {
		_, err := s.service.Commence(s.ctx, &battle.CommenceInput{
			TrainerOne: one,
			TrainerTwo: two,
			Mode:       roster.BattleMode(7),
		})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("trainer without roster", func() {
		_, err := s.service.Commence(s.ctx, &battle.CommenceInput{
			TrainerOne: one,
			TrainerTwo: trainer.New("Empty"),
			Mode:       roster.ModeSet,
		})
		s.Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("optimise without criterion defaults to health", func() {
		alpha := s.newTrainer("Alpha", normal("strong", 30, 20, 10, 10))
		beta := s.newTrainer("Beta", normal("weak", 10, 4, 2, 5))

		output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
			TrainerOne: alpha,
			TrainerTwo: beta,
			Mode:       roster.ModeOptimise,
		})
		s.NoError(err)
		s.Equal(alpha, output.Winner)
	})
}

func (s *OrchestratorTestSuite) TestFasterAttackerKillsWithoutRetaliation() {
	// Hitter deals 20-2 = 18 damage; Squish dies before striking back
	hitter := normal("Hitter", 30, 20, 10, 10)
	squish := normal("Squish", 10, 4, 2, 5)

	one := s.newTrainer("Ash", hitter)
	two := s.newTrainer("Gary", squish)

	output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       roster.ModeSet,
	})
	s.Require().NoError(err)

	s.Equal(one, output.Winner)
	s.False(output.Draw)
	s.Equal(1, output.Rounds)

	// No retaliation, no chip, and a direct-attack faint never levels the
	// attacker
	s.Equal(30.0, hitter.Health)
	s.Equal(1, hitter.Level)
	s.Equal([]string{"Squish"}, s.narrator.fainted)
	s.Empty(s.narrator.leveled)
}

func (s *OrchestratorTestSuite) TestEqualSpeedSimultaneousFaintIsDraw() {
	// Equal speed means both attacks resolve even if the first one kills
	p1 := normal("Left", 10, 20, 2, 5)
	p2 := normal("Right", 10, 20, 2, 5)

	one := s.newTrainer("Ash", p1)
	two := s.newTrainer("Gary", p2)

	output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       roster.ModeSet,
	})
	s.Require().NoError(err)

	s.True(output.Draw)
	s.Nil(output.Winner)
	s.Equal(1, output.Rounds)
	s.Empty(s.narrator.leveled)
}

func (s *OrchestratorTestSuite) TestChipDamageBreaksStalemate() {
	// Both tanks shrug off attacks (1 damage halved to 0.5); only the end of
	// round chip (2 halved to 1) wears them down. The survivor of a chip
	// faint levels up and evolves.
	tank := normal("Boulder", 20, 4, 10, 5)
	tank.Evolutions = []entities.Stage{
		{Name: "Boulder", Multiplier: 1},
		{Name: "Mountain", Multiplier: 1.5},
	}
	brittle := normal("Pebble", 7, 4, 10, 6)

	one := s.newTrainer("Ash", tank)
	two := s.newTrainer("Gary", brittle)

	output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       roster.ModeSet,
	})
	s.Require().NoError(err)

	// Each side loses 1.5 health per round; Pebble falls to the chip in
	// round 5
	s.Equal(one, output.Winner)
	s.Equal(5, output.Rounds)
	s.Equal([]string{"Pebble"}, s.narrator.fainted)

	s.Equal([]string{"Mountain"}, s.narrator.leveled)
	s.Equal(2, tank.Level)
	s.Equal("Mountain", tank.Name)
	s.InDelta(18.75, tank.Health, 1e-9) // (20 - 5*1.5) * 1.5
}

func (s *OrchestratorTestSuite) TestCompletionAdvantageScalesDamage() {
	// Ash's dex holds two types to Gary's one, so his damage scales by
	// 0.13/0.07 before the ceiling: ceil(10 * 0.13/0.07) = 19
	striker := normal("Striker", 30, 12, 10, 10)
	backup := normal("Backup", 30, 5, 5, 5)
	backup.Type = entities.TypeDragon
	target := normal("Target", 12, 4, 2, 5)

	one := s.newTrainer("Ash", striker, backup)
	two := s.newTrainer("Gary", target)

	s.InDelta(0.13, one.Completion(), 1e-9)
	s.InDelta(0.07, two.Completion(), 1e-9)

	output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       roster.ModeSet,
	})
	s.Require().NoError(err)

	// Unscaled damage (10) would have left Target at 2 health
	s.Equal(one, output.Winner)
	s.Equal(1, output.Rounds)
	s.Equal(-7.0, target.Health)
}

func (s *OrchestratorTestSuite) TestRotateModeCyclesSurvivors() {
	// Four identical walls: every round costs each front 1.5 health, and
	// survivors rotate to the back
	a1 := normal("A1", 4, 2, 20, 5)
	a2 := normal("A2", 4, 2, 20, 5)
	b1 := normal("B1", 4, 2, 20, 5)
	b2 := normal("B2", 4, 2, 20, 5)

	one := s.newTrainer("Ash", a1, a2)
	two := s.newTrainer("Gary", b1, b2)

	output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       roster.ModeRotate,
	})
	s.Require().NoError(err)

	// Fully symmetric battle: every pairing chips down together
	s.True(output.Draw)
	s.Equal(6, output.Rounds)
	s.Equal([][2]string{
		{"A1", "B1"}, {"A2", "B2"},
		{"A1", "B1"}, {"A2", "B2"},
		{"A1", "B1"}, {"A2", "B2"},
	}, s.narrator.rounds)

	// Chip faints that take both sides level neither
	s.Empty(s.narrator.leveled)
}

func (s *OrchestratorTestSuite) TestOptimiseModeResortsEachRound() {
	// Health-keyed priority: the weakest combatant fronts each round
	a1 := normal("A1", 4, 2, 20, 5)
	a2 := normal("A2", 6, 2, 20, 5)
	b1 := normal("B1", 3, 2, 20, 5)
	b2 := normal("B2", 10, 2, 20, 5)

	one := s.newTrainer("Ash", a1, a2)
	two := s.newTrainer("Gary", b1, b2)

	output, err := s.service.Commence(s.ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       roster.ModeOptimise,
		Criterion:  roster.CriterionHealth,
	})
	s.Require().NoError(err)

	s.Equal(two, output.Winner)
	s.Equal(7, output.Rounds)

	// B1 falls to the chip in round 2 and A1 levels for outlasting it;
	// A1 then falls in round 3 and A2 in round 7, leveling B2 twice
	s.Equal([]string{"B1", "A1", "A2"}, s.narrator.fainted)
	s.Equal([]string{"A1", "B2", "B2"}, s.narrator.leveled)
	s.Equal(2, a1.Level)
	s.Equal(3, b2.Level)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
