package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kyblue11/Pokemon-DSA/internal/repositories/standings"
)

var (
	standingsRedisAddr string
	standingsLimit     int
	standingsClear     bool
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show recorded battle results",
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&standingsRedisAddr, "redis", "localhost:6379", "redis endpoint holding the standings")
	standingsCmd.Flags().IntVar(&standingsLimit, "limit", 0, "show only the N most recent records (0 for all)")
	standingsCmd.Flags().BoolVar(&standingsClear, "clear", false, "clear all recorded results instead of listing")
}

func runStandings(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	repo, err := newStandingsRepo(standingsRedisAddr)
	if err != nil {
		return err
	}

	if standingsClear {
		output, err := repo.Clear(ctx, standings.ClearInput{})
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d records.\n", output.Removed)
		return nil
	}

	output, err := repo.List(ctx, standings.ListInput{Limit: standingsLimit})
	if err != nil {
		return err
	}

	if len(output.Records) == 0 {
		fmt.Println("No battles recorded.")
		return nil
	}

	for _, record := range output.Records {
		outcome := record.Winner + " won"
		if record.Draw {
			outcome = "draw"
		}
		fmt.Printf("%s  %s vs %s  %s  (%s, %d rounds)\n",
			record.RecordedAt.Format("2006-01-02 15:04:05"),
			record.TrainerOne, record.TrainerTwo, outcome,
			record.Mode, record.Rounds)
	}

	return nil
}
