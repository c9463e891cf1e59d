package entities

import (
	"strings"

	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// PokeType is the elemental type of a Pokemon. The declaration order is
// load-bearing: it matches the row and column order of the type
// effectiveness matrix.
type PokeType int

// Elemental types
const (
	TypeFire PokeType = iota
	TypeWater
	TypeGrass
	TypeBug
	TypeDragon
	TypeElectric
	TypeFighting
	TypeFlying
	TypeGhost
	TypeGround
	TypeIce
	TypeNormal
	TypePoison
	TypePsychic
	TypeRock
)

// NumPokeTypes is the size of the type enumeration
const NumPokeTypes = 15

var typeNames = [NumPokeTypes]string{
	"fire", "water", "grass", "bug", "dragon",
	"electric", "fighting", "flying", "ghost", "ground",
	"ice", "normal", "poison", "psychic", "rock",
}

// String returns the lowercase name of the type
func (t PokeType) String() string {
	if t < 0 || int(t) >= NumPokeTypes {
		return "unknown"
	}
	return typeNames[t]
}

// Valid reports whether the type is within the enumeration
func (t PokeType) Valid() bool {
	return t >= 0 && int(t) < NumPokeTypes
}

// ParsePokeType converts a type name into a PokeType
func ParsePokeType(name string) (PokeType, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == needle {
			return PokeType(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown pokemon type: %q", name)
}
