package roster

import (
	"sort"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// SortKey orders elements in a SortedList. Primary carries the (possibly
// direction-flipped) stat value; Secondary breaks ties, carrying the
// element's position at keying time so equal stats keep their relative
// order.
type SortKey struct {
	Primary   float64
	Secondary float64
}

// Less reports whether k sorts before other
func (k SortKey) Less(other SortKey) bool {
	if k.Primary != other.Primary {
		return k.Primary < other.Primary
	}
	return k.Secondary < other.Secondary
}

type sortedItem struct {
	pokemon *entities.Pokemon
	key     SortKey
}

// SortedList is the priority ordering used by optimise battles: elements sit
// in ascending key order and the front is position zero. Insertion finds the
// position by binary search and shifts the tail, so adding is O(log n) when
// the element lands at the end and O(n) when it lands at the front.
type SortedList struct {
	items    []sortedItem
	capacity int
}

var _ Ordering = (*SortedList)(nil)

// NewSortedList creates an empty sorted list with a fixed capacity
func NewSortedList(capacity int) (*SortedList, error) {
	if capacity < 0 {
		return nil, errors.InvalidArgumentf("sorted list capacity cannot be negative: %d", capacity)
	}
	return &SortedList{
		items:    make([]sortedItem, 0, capacity),
		capacity: capacity,
	}, nil
}

// Add inserts a Pokemon at its key's position
func (l *SortedList) Add(p *entities.Pokemon, key SortKey) error {
	if len(l.items) >= l.capacity {
		return errFull("sorted list", l.capacity)
	}
	pos := sort.Search(len(l.items), func(i int) bool {
		return key.Less(l.items[i].key)
	})
	l.items = append(l.items, sortedItem{})
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = sortedItem{pokemon: p, key: key}
	return nil
}

// Front returns the element at position zero
func (l *SortedList) Front() (*entities.Pokemon, error) {
	if len(l.items) == 0 {
		return nil, errEmpty("sorted list")
	}
	return l.items[0].pokemon, nil
}

// RemoveFront deletes the element at position zero, shifting the rest left
func (l *SortedList) RemoveFront() (*entities.Pokemon, error) {
	if len(l.items) == 0 {
		return nil, errEmpty("sorted list")
	}
	front := l.items[0].pokemon
	copy(l.items, l.items[1:])
	l.items[len(l.items)-1] = sortedItem{}
	l.items = l.items[:len(l.items)-1]
	return front, nil
}

// Len returns the current occupancy
func (l *SortedList) Len() int {
	return len(l.items)
}

// Members returns the list contents in sorted order
func (l *SortedList) Members() []*entities.Pokemon {
	members := make([]*entities.Pokemon, len(l.items))
	for i, item := range l.items {
		members[i] = item.pokemon
	}
	return members
}

// Keys returns the sort keys in list order, for order assertions in tests
func (l *SortedList) Keys() []SortKey {
	keys := make([]SortKey, len(l.items))
	for i, item := range l.items {
		keys[i] = item.key
	}
	return keys
}
