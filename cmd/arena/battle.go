package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/battle"
	"github.com/Kyblue11/Pokemon-DSA/internal/pkg/idgen"
	"github.com/Kyblue11/Pokemon-DSA/internal/repositories/standings"
	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
)

var (
	battleMode      string
	battleCriterion string
	battleChartPath string
	battleSpecies   string
	battleRedisAddr string
	trainerOneName  string
	trainerTwoName  string
	teamOneSpec     string
	teamTwoSpec     string
	battleTeamSize  int
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Run a single battle between two trainers",
	Long:  `Run one battle to completion. Teams are picked at random from the species catalogue unless given explicitly as comma-separated species names.`,
	RunE:  runBattle,
}

func init() {
	battleCmd.Flags().StringVar(&battleMode, "mode", "set", "battle mode: set, rotate or optimise")
	battleCmd.Flags().StringVar(&battleCriterion, "criterion", "", "ordering criterion for optimise mode: health, defence, battle_power, speed or level")
	battleCmd.Flags().StringVar(&battleChartPath, "chart", "", "path to a type effectiveness CSV (embedded default when empty)")
	battleCmd.Flags().StringVar(&battleSpecies, "species", "", "path to a species catalogue YAML (embedded default when empty)")
	battleCmd.Flags().StringVar(&battleRedisAddr, "redis", "", "redis endpoint for recording standings (in-memory when empty)")
	battleCmd.Flags().StringVar(&trainerOneName, "trainer-one", "Ash", "name of the first trainer")
	battleCmd.Flags().StringVar(&trainerTwoName, "trainer-two", "Gary", "name of the second trainer")
	battleCmd.Flags().StringVar(&teamOneSpec, "team-one", "", "comma-separated species for the first trainer (random when empty)")
	battleCmd.Flags().StringVar(&teamTwoSpec, "team-two", "", "comma-separated species for the second trainer (random when empty)")
	battleCmd.Flags().IntVar(&battleTeamSize, "team-size", 3, "team size for randomly picked teams")
}

func runBattle(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mode, err := roster.ParseBattleMode(battleMode)
	if err != nil {
		return err
	}

	var criterion roster.Criterion
	if battleCriterion != "" {
		criterion, err = roster.ParseCriterion(battleCriterion)
		if err != nil {
			return err
		}
	}

	chart, err := loadChart(battleChartPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalogue(battleSpecies)
	if err != nil {
		return err
	}

	one := trainer.New(trainerOneName)
	teamOne, err := buildTeam(cat, teamOneSpec, battleTeamSize)
	if err != nil {
		return err
	}
	if err := one.AssignRoster(teamOne); err != nil {
		return err
	}

	two := trainer.New(trainerTwoName)
	teamTwo, err := buildTeam(cat, teamTwoSpec, battleTeamSize)
	if err != nil {
		return err
	}
	if err := two.AssignRoster(teamTwo); err != nil {
		return err
	}

	service, err := battle.NewOrchestrator(&battle.Config{
		Chart:    chart,
		Narrator: &consoleNarrator{w: os.Stdout},
	})
	if err != nil {
		return err
	}

	output, err := service.Commence(ctx, &battle.CommenceInput{
		TrainerOne: one,
		TrainerTwo: two,
		Mode:       mode,
		Criterion:  criterion,
	})
	if err != nil {
		return err
	}

	repo, err := newStandingsRepo(battleRedisAddr)
	if err != nil {
		return err
	}

	record := &standings.BattleRecord{
		ID:         idgen.NewUUID("battle").Generate(),
		TrainerOne: one.Name(),
		TrainerTwo: two.Name(),
		Draw:       output.Draw,
		Mode:       mode.String(),
		Rounds:     output.Rounds,
	}
	if output.Winner != nil {
		record.Winner = output.Winner.Name()
	}
	if _, err := repo.Record(ctx, standings.RecordInput{Record: record}); err != nil {
		return err
	}

	fmt.Printf("\n%s\n%s\n", one, two)
	return nil
}
