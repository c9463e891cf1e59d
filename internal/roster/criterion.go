package roster

import (
	"strings"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// Criterion is the stat a priority-ordered roster sorts by
type Criterion string

// Recognized sort criteria
const (
	CriterionHealth      Criterion = "health"
	CriterionDefence     Criterion = "defence"
	CriterionBattlePower Criterion = "battle_power"
	CriterionSpeed       Criterion = "speed"
	CriterionLevel       Criterion = "level"
)

// statAccessors is the fixed table mapping each criterion to the stat it
// reads. Lookups outside this table are rejected at the boundary, never
// resolved dynamically.
var statAccessors = map[Criterion]func(*entities.Pokemon) float64{
	CriterionHealth:      func(p *entities.Pokemon) float64 { return p.Health },
	CriterionDefence:     func(p *entities.Pokemon) float64 { return p.Defence },
	CriterionBattlePower: func(p *entities.Pokemon) float64 { return p.BattlePower },
	CriterionSpeed:       func(p *entities.Pokemon) float64 { return p.Speed },
	CriterionLevel:       func(p *entities.Pokemon) float64 { return float64(p.Level) },
}

// Valid reports whether the criterion is in the recognized set
func (c Criterion) Valid() bool {
	_, ok := statAccessors[c]
	return ok
}

// Value reads the criterion's stat from a Pokemon. Only valid criteria may
// be used; callers validate with Valid or ParseCriterion first.
func (c Criterion) Value(p *entities.Pokemon) float64 {
	return statAccessors[c](p)
}

// ParseCriterion converts a criterion name into a Criterion
func ParseCriterion(name string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", errors.InvalidArgumentf("unknown sort criterion: %q", name)
	}
	return c, nil
}
