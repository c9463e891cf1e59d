package roster

import (
	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// Queue is the FIFO ordering used by rotate battles, backed by a circular
// buffer. The front combatant is the oldest enqueued one; after each round
// the survivor rotates to the back.
type Queue struct {
	items []*entities.Pokemon
	front int
	count int
}

var _ Ordering = (*Queue)(nil)

// NewQueue creates an empty circular queue with a fixed capacity
func NewQueue(capacity int) (*Queue, error) {
	if capacity < 0 {
		return nil, errors.InvalidArgumentf("queue capacity cannot be negative: %d", capacity)
	}
	return &Queue{
		items: make([]*entities.Pokemon, capacity),
	}, nil
}

// Enqueue appends a Pokemon to the back of the queue
func (q *Queue) Enqueue(p *entities.Pokemon) error {
	if q.count >= len(q.items) {
		return errFull("queue", len(q.items))
	}
	q.items[(q.front+q.count)%len(q.items)] = p
	q.count++
	return nil
}

// Front returns the head of the queue
func (q *Queue) Front() (*entities.Pokemon, error) {
	if q.count == 0 {
		return nil, errEmpty("queue")
	}
	return q.items[q.front], nil
}

// RemoveFront serves the head of the queue
func (q *Queue) RemoveFront() (*entities.Pokemon, error) {
	if q.count == 0 {
		return nil, errEmpty("queue")
	}
	head := q.items[q.front]
	q.items[q.front] = nil
	q.front = (q.front + 1) % len(q.items)
	q.count--
	return head, nil
}

// Len returns the current occupancy
func (q *Queue) Len() int {
	return q.count
}

// Rotate serves the front element and re-enqueues it at the back. The
// element keeps its identity; only its position changes.
func (q *Queue) Rotate() error {
	head, err := q.RemoveFront()
	if err != nil {
		return err
	}
	return q.Enqueue(head)
}

// Members returns the queue contents front-to-back
func (q *Queue) Members() []*entities.Pokemon {
	members := make([]*entities.Pokemon, 0, q.count)
	for i := 0; i < q.count; i++ {
		members = append(members, q.items[(q.front+i)%len(q.items)])
	}
	return members
}

// ReverseBackHalf reverses the order of the back floor(n/2) elements,
// leaving the front half untouched. This is the "special" action for rotate
// battles.
func (q *Queue) ReverseBackHalf() {
	members := q.Members()
	half := len(members) / 2
	lo := len(members) - half
	hi := len(members) - 1
	for lo < hi {
		members[lo], members[hi] = members[hi], members[lo]
		lo++
		hi--
	}
	for i, p := range members {
		q.items[(q.front+i)%len(q.items)] = p
	}
}
