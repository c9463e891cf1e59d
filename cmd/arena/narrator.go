package main

import (
	"fmt"
	"io"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/orchestrators/battle"
	"github.com/Kyblue11/Pokemon-DSA/internal/trainer"
)

// consoleNarrator prints human-readable play-by-play to the given writer
type consoleNarrator struct {
	w io.Writer
}

var _ battle.Narrator = (*consoleNarrator)(nil)

func (n *consoleNarrator) BattleStarted(one, two *trainer.Trainer) {
	fmt.Fprintf(n.w, "%s challenges %s!\n", one.Name(), two.Name())
	fmt.Fprintf(n.w, "  %s\n  %s\n", one, two)
}

func (n *consoleNarrator) RoundStarted(round int, one, two *entities.Pokemon) {
	fmt.Fprintf(n.w, "Round %d: %s vs %s\n", round, one, two)
}

func (n *consoleNarrator) AttackLanded(attacker, defender *entities.Pokemon, damage float64) {
	fmt.Fprintf(n.w, "  %s hits %s for %g damage\n", attacker.Name, defender.Name, damage)
}

func (n *consoleNarrator) Fainted(pokemon *entities.Pokemon, owner *trainer.Trainer) {
	fmt.Fprintf(n.w, "  %s's %s fainted!\n", owner.Name(), pokemon.Name)
}

func (n *consoleNarrator) LeveledUp(pokemon *entities.Pokemon, previousName string) {
	if pokemon.Name != previousName {
		fmt.Fprintf(n.w, "  %s evolved into %s!\n", previousName, pokemon.Name)
		return
	}
	fmt.Fprintf(n.w, "  %s grew to level %d\n", pokemon.Name, pokemon.Level)
}

func (n *consoleNarrator) BattleEnded(winner *trainer.Trainer, draw bool, rounds int) {
	if draw {
		fmt.Fprintf(n.w, "The battle ended in a draw after %d rounds.\n", rounds)
		return
	}
	fmt.Fprintf(n.w, "%s wins after %d rounds!\n", winner.Name(), rounds)
}
