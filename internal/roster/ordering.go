// Package roster implements the team container: three interchangeable
// ordering policies (stack, circular queue, sorted list) behind one
// contract, plus the Roster that assembles, regenerates, and resorts them.
package roster

import (
	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// Ordering is the uniform contract over the three container policies. The
// front element is the combatant currently exposed to battle: the top of the
// stack, the head of the queue, or position zero of the sorted list.
// Orderings hold Pokemon by reference and never copy them; the combatant's
// stats are opaque to every policy except the sorted list's key function.
type Ordering interface {
	// Front peeks at the front element without removing it
	Front() (*entities.Pokemon, error)

	// RemoveFront removes and returns the front element
	RemoveFront() (*entities.Pokemon, error)

	// Len returns the current occupancy
	Len() int

	// Members returns the elements front-to-back without disturbing the
	// ordering
	Members() []*entities.Pokemon
}

func errEmpty(kind string) error {
	return errors.FailedPreconditionf("%s is empty", kind)
}

func errFull(kind string, capacity int) error {
	return errors.ResourceExhaustedf("%s is full (capacity %d)", kind, capacity)
}
