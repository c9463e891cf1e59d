package trainer

import (
	"math/bits"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
)

// TypeDex is the set of elemental types a trainer has encountered, packed
// into a bitset. Registering a type twice is a no-op.
type TypeDex uint32

// Add records an encountered type
func (d *TypeDex) Add(t entities.PokeType) {
	if !t.Valid() {
		return
	}
	*d |= 1 << uint(t)
}

// Contains reports whether a type has been encountered
func (d TypeDex) Contains(t entities.PokeType) bool {
	return t.Valid() && d&(1<<uint(t)) != 0
}

// Len returns the number of distinct types encountered
func (d TypeDex) Len() int {
	return bits.OnesCount32(uint32(d))
}
