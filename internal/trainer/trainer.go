// Package trainer pairs a competitor with their roster and the running set
// of elemental types they have encountered.
package trainer

import (
	"fmt"
	"math"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
)

// Trainer owns a roster exclusively and tracks encountered types. Damage in
// battle scales by the ratio of the two trainers' completion values.
type Trainer struct {
	name   string
	roster *roster.Roster
	dex    TypeDex
}

// New creates a trainer with no roster yet
func New(name string) *Trainer {
	return &Trainer{name: name}
}

// Name returns the trainer's name
func (t *Trainer) Name() string {
	return t.name
}

// AssignRoster builds the trainer's roster from the given members and
// registers each member's own type in the dex.
func (t *Trainer) AssignRoster(members []*entities.Pokemon) error {
	r, err := roster.New(members)
	if err != nil {
		return errors.Wrapf(err, "failed to assign roster to %s", t.name)
	}
	t.roster = r
	for _, p := range members {
		t.RegisterType(p.Type)
	}
	return nil
}

// Roster returns the trainer's roster, or nil before assignment
func (t *Trainer) Roster() *roster.Roster {
	return t.roster
}

// RegisterType records an encountered elemental type
func (t *Trainer) RegisterType(pt entities.PokeType) {
	t.dex.Add(pt)
}

// Completion returns the fraction of the type enumeration this trainer has
// encountered, rounded to two decimals. A trainer with a roster always has
// at least one registered type, so the value is in (0, 1].
func (t *Trainer) Completion() float64 {
	ratio := float64(t.dex.Len()) / float64(entities.NumPokeTypes)
	return math.Round(ratio*100) / 100
}

// String renders the trainer with their dex completion percentage
func (t *Trainer) String() string {
	return fmt.Sprintf("Trainer %s Pokedex Completion: %.0f%%", t.name, t.Completion()*100)
}
