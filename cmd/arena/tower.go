package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/battle"
	"github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/tower"
	"github.com/Kyblue11/Pokemon-DSA/internal/pkg/idgen"
)

var (
	towerPlayerName string
	towerTeamSpec   string
	towerTeamSize   int
	towerEnemies    int
	towerChartPath  string
	towerSpecies    string
	towerRedisAddr  string
)

var towerCmd = &cobra.Command{
	Use:   "tower",
	Short: "Climb the battle tower",
	Long:  `Run a full battle tower campaign: the player fights a queue of enemy trainers in rotate mode, one battle per step, until either side runs out of lives.`,
	RunE:  runTower,
}

func init() {
	towerCmd.Flags().StringVar(&towerPlayerName, "player", "Ash", "name of the challenging trainer")
	towerCmd.Flags().StringVar(&towerTeamSpec, "team", "", "comma-separated species for the player (random when empty)")
	towerCmd.Flags().IntVar(&towerTeamSize, "team-size", 3, "team size for randomly picked teams")
	towerCmd.Flags().IntVar(&towerEnemies, "enemies", 3, "number of enemy trainers in the tower")
	towerCmd.Flags().StringVar(&towerChartPath, "chart", "", "path to a type effectiveness CSV (embedded default when empty)")
	towerCmd.Flags().StringVar(&towerSpecies, "species", "", "path to a species catalogue YAML (embedded default when empty)")
	towerCmd.Flags().StringVar(&towerRedisAddr, "redis", "", "redis endpoint for recording standings (in-memory when empty)")
}

func runTower(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if towerEnemies < 1 {
		return fmt.Errorf("tower needs at least one enemy trainer")
	}

	chart, err := loadChart(towerChartPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalogue(towerSpecies)
	if err != nil {
		return err
	}

	repo, err := newStandingsRepo(towerRedisAddr)
	if err != nil {
		return err
	}

	battleService, err := battle.NewOrchestrator(&battle.Config{
		Chart:    chart,
		Narrator: battle.LogNarrator{},
	})
	if err != nil {
		return err
	}

	towerService, err := tower.NewOrchestrator(&tower.Config{
		BattleService: battleService,
		StandingsRepo: repo,
		Templates:     cat,
		Roller:        dice.DefaultRoller,
		IDGenerator:   idgen.NewUUID("run"),
	})
	if err != nil {
		return err
	}

	playerTeam, err := buildTeam(cat, towerTeamSpec, towerTeamSize)
	if err != nil {
		return err
	}

	enemies := make([]tower.EnemySetup, towerEnemies)
	for i := range enemies {
		team, err := buildTeam(cat, "", towerTeamSize)
		if err != nil {
			return err
		}
		enemies[i] = tower.EnemySetup{
			Name: fmt.Sprintf("Rival %d", i+1),
			Team: team,
		}
	}

	created, err := towerService.CreateRun(ctx, &tower.CreateRunInput{
		PlayerName: towerPlayerName,
		PlayerTeam: playerTeam,
		Enemies:    enemies,
	})
	if err != nil {
		return err
	}

	run := created.Run
	fmt.Printf("%s enters the tower with %d lives, facing %d trainers.\n",
		run.Player, run.PlayerLives, run.EnemiesRemaining)

	for !run.Finished {
		output, err := towerService.NextBattle(ctx, &tower.NextBattleInput{RunID: run.ID})
		if err != nil {
			return err
		}
		run = output.Run
		b := output.Battle

		switch {
		case b.Draw:
			fmt.Printf("Draw against %s after %d rounds. Lives: player %d, enemy %d.\n",
				b.Enemy, b.Rounds, b.PlayerLives, b.EnemyLives)
		case b.Winner == run.Player:
			fmt.Printf("Beat %s in %d rounds. Enemy lives left: %d.\n",
				b.Enemy, b.Rounds, b.EnemyLives)
		default:
			fmt.Printf("Lost to %s in %d rounds. Player lives left: %d.\n",
				b.Enemy, b.Rounds, b.PlayerLives)
		}
		if b.EnemyDefeated {
			fmt.Printf("%s is out of the tower!\n", b.Enemy)
		}
	}

	if run.Victorious {
		fmt.Printf("%s cleared the tower, defeating %d trainers!\n", run.Player, run.EnemiesDefeated)
	} else {
		fmt.Printf("%s fell after defeating %d trainers.\n", run.Player, run.EnemiesDefeated)
	}

	return nil
}
