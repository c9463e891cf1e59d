package roster

import (
	"strings"

	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// BattleMode selects the ordering policy a roster is assembled into and the
// post-round behavior the battle engine applies.
type BattleMode int

// Battle modes
const (
	// ModeSet keeps each combatant at the front until it faints (LIFO).
	ModeSet BattleMode = iota
	// ModeRotate cycles the surviving front combatant to the back each
	// round (FIFO).
	ModeRotate
	// ModeOptimise keeps combatants sorted by a stat criterion (priority).
	ModeOptimise
)

var modeNames = map[BattleMode]string{
	ModeSet:      "set",
	ModeRotate:   "rotate",
	ModeOptimise: "optimise",
}

// String returns the mode name
func (m BattleMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether the mode is one of the three battle modes
func (m BattleMode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseBattleMode converts a mode name into a BattleMode
func ParseBattleMode(name string) (BattleMode, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for mode, n := range modeNames {
		if n == needle {
			return mode, nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown battle mode: %q", name)
}
