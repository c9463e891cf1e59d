// Package entities holds the combatant model shared by rosters, trainers,
// and the battle orchestrators.
package entities

import (
	"fmt"
	"math"
)

// Stage is one step of an evolution line: the name the Pokemon takes and the
// multiplier applied to its combat stats when it evolves into this stage.
type Stage struct {
	Name       string  `yaml:"name"`
	Multiplier float64 `yaml:"multiplier"`
}

// Effectiveness reports the damage multiplier of one elemental type
// attacking another. Implemented by typechart.Chart.
type Effectiveness interface {
	Multiplier(attack, defend PokeType) float64
}

// Pokemon is a mutable combatant. Health drops during combat and may go
// negative transiently; aliveness is strictly health > 0. Stats other than
// health change only on evolution or regeneration.
type Pokemon struct {
	Name        string
	Level       int
	Health      float64
	BattlePower float64
	Defence     float64
	Speed       float64
	Type        PokeType
	Experience  int
	Evolutions  []Stage
}

// SetHealth explicitly sets the current health, e.g. during regeneration.
func (p *Pokemon) SetHealth(health float64) {
	p.Health = health
}

// IsAlive reports whether the Pokemon can still fight
func (p *Pokemon) IsAlive() bool {
	return p.Health > 0
}

// Attack computes the raw damage this Pokemon inflicts on the target. The
// tier depends on how the target's defence compares to the attacker's battle
// power, and the result is scaled by type effectiveness.
func (p *Pokemon) Attack(target *Pokemon, chart Effectiveness) float64 {
	var damage float64
	switch {
	case target.Defence < p.BattlePower/2:
		damage = p.BattlePower - target.Defence
	case target.Defence < p.BattlePower:
		damage = math.Ceil(p.BattlePower*5/8 - target.Defence/4)
	default:
		damage = math.Ceil(p.BattlePower / 4)
	}
	return damage * chart.Multiplier(p.Type, target.Type)
}

// Defend applies incoming damage to this Pokemon. Damage below the defence
// stat is halved.
func (p *Pokemon) Defend(damage float64) {
	effective := damage
	if damage < p.Defence {
		effective = damage / 2
	}
	p.Health -= effective
}

// LevelUp raises the level by one and evolves the Pokemon when its evolution
// line has a stage beyond the current name. Reports whether an evolution
// took place.
func (p *Pokemon) LevelUp() bool {
	p.Level++
	idx := p.stageIndex()
	if idx < 0 || idx >= len(p.Evolutions)-1 {
		return false
	}
	p.evolve(p.Evolutions[idx+1])
	return true
}

// stageIndex finds the position of the current name in the evolution line,
// or -1 when the Pokemon has no evolution line.
func (p *Pokemon) stageIndex() int {
	for i, stage := range p.Evolutions {
		if stage.Name == p.Name {
			return i
		}
	}
	return -1
}

func (p *Pokemon) evolve(next Stage) {
	p.Name = next.Name
	p.BattlePower *= next.Multiplier
	p.Health *= next.Multiplier
	p.Speed *= next.Multiplier
	p.Defence *= next.Multiplier
}

// SameLineage reports whether two evolution lines are stage-for-stage equal.
// Regeneration uses this to match a battled Pokemon back to its catalogue
// template.
func SameLineage(a, b []Stage) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
	}
	return true
}

// String renders the Pokemon for narration
func (p *Pokemon) String() string {
	return fmt.Sprintf("%s (Level %d) with %g health and %d experience",
		p.Name, p.Level, p.Health, p.Experience)
}
