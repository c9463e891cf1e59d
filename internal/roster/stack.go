package roster

import (
	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// Stack is the LIFO ordering used by set battles: the front combatant is the
// most recently pushed one, and it stays at the front until it faints.
type Stack struct {
	items    []*entities.Pokemon
	capacity int
}

var _ Ordering = (*Stack)(nil)

// NewStack creates an empty stack with a fixed capacity
func NewStack(capacity int) (*Stack, error) {
	if capacity < 0 {
		return nil, errors.InvalidArgumentf("stack capacity cannot be negative: %d", capacity)
	}
	return &Stack{
		items:    make([]*entities.Pokemon, 0, capacity),
		capacity: capacity,
	}, nil
}

// Push places a Pokemon on top of the stack, making it the new front
func (s *Stack) Push(p *entities.Pokemon) error {
	if len(s.items) >= s.capacity {
		return errFull("stack", s.capacity)
	}
	s.items = append(s.items, p)
	return nil
}

// Front returns the top of the stack
func (s *Stack) Front() (*entities.Pokemon, error) {
	if len(s.items) == 0 {
		return nil, errEmpty("stack")
	}
	return s.items[len(s.items)-1], nil
}

// RemoveFront pops the top of the stack
func (s *Stack) RemoveFront() (*entities.Pokemon, error) {
	if len(s.items) == 0 {
		return nil, errEmpty("stack")
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Len returns the current occupancy
func (s *Stack) Len() int {
	return len(s.items)
}

// Members returns the stack contents front-to-back (top first)
func (s *Stack) Members() []*entities.Pokemon {
	members := make([]*entities.Pokemon, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		members = append(members, s.items[i])
	}
	return members
}

// ReverseFrontHalf reverses the order of the front floor(n/2) elements,
// leaving the back half untouched. This is the "special" action for set
// battles.
func (s *Stack) ReverseFrontHalf() {
	half := len(s.items) / 2
	lo := len(s.items) - half
	hi := len(s.items) - 1
	for lo < hi {
		s.items[lo], s.items[hi] = s.items[hi], s.items[lo]
		lo++
		hi--
	}
}
