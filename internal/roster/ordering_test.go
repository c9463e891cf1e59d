package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/roster"
)

func named(name string) *entities.Pokemon {
	return &entities.Pokemon{Name: name, Health: 10}
}

func names(members []*entities.Pokemon) []string {
	out := make([]string, len(members))
	for i, p := range members {
		out[i] = p.Name
	}
	return out
}

func TestStack(t *testing.T) {
	s, err := roster.NewStack(3)
	require.NoError(t, err)

	_, err = s.Front()
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))

	require.NoError(t, s.Push(named("a")))
	require.NoError(t, s.Push(named("b")))
	require.NoError(t, s.Push(named("c")))

	err = s.Push(named("d"))
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))

	front, err := s.Front()
	require.NoError(t, err)
	assert.Equal(t, "c", front.Name)
	assert.Equal(t, []string{"c", "b", "a"}, names(s.Members()))

	before := s.Len()
	popped, err := s.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, "c", popped.Name)
	assert.Equal(t, before-1, s.Len())
}

func TestStackReverseFrontHalf(t *testing.T) {
	testCases := []struct {
		name     string
		pushed   []string
		expected []string
	}{
		{
			name:     "odd size reverses front two",
			pushed:   []string{"a", "b", "c", "d", "e"},
			expected: []string{"d", "e", "c", "b", "a"},
		},
		{
			name:     "even size reverses front two",
			pushed:   []string{"a", "b", "c", "d"},
			expected: []string{"c", "d", "b", "a"},
		},
		{
			name:     "single element unchanged",
			pushed:   []string{"a"},
			expected: []string{"a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := roster.NewStack(len(tc.pushed))
			require.NoError(t, err)
			for _, n := range tc.pushed {
				require.NoError(t, s.Push(named(n)))
			}

			s.ReverseFrontHalf()
			assert.Equal(t, tc.expected, names(s.Members()))
		})
	}
}

func TestQueue(t *testing.T) {
	q, err := roster.NewQueue(3)
	require.NoError(t, err)

	_, err = q.Front()
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))

	require.NoError(t, q.Enqueue(named("a")))
	require.NoError(t, q.Enqueue(named("b")))
	require.NoError(t, q.Enqueue(named("c")))

	err = q.Enqueue(named("d"))
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", front.Name)

	served, err := q.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, "a", served.Name)
	assert.Equal(t, 2, q.Len())

	// Wrap around the ring
	require.NoError(t, q.Enqueue(named("d")))
	assert.Equal(t, []string{"b", "c", "d"}, names(q.Members()))
}

func TestQueueRotateCyclic(t *testing.T) {
	q, err := roster.NewQueue(4)
	require.NoError(t, err)
	for _, n := range []string{"a", "b", "c", "d"} {
		require.NoError(t, q.Enqueue(named(n)))
	}

	require.NoError(t, q.Rotate())
	assert.Equal(t, []string{"b", "c", "d", "a"}, names(q.Members()))

	// Rotating size times restores the original order
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Rotate())
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(q.Members()))
}

func TestQueueReverseBackHalf(t *testing.T) {
	q, err := roster.NewQueue(5)
	require.NoError(t, err)
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, q.Enqueue(named(n)))
	}

	q.ReverseBackHalf()
	assert.Equal(t, []string{"a", "b", "c", "e", "d"}, names(q.Members()))
}

func TestSortedList(t *testing.T) {
	l, err := roster.NewSortedList(4)
	require.NoError(t, err)

	_, err = l.Front()
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))

	add := func(name string, primary, secondary float64) {
		require.NoError(t, l.Add(named(name), roster.SortKey{Primary: primary, Secondary: secondary}))
	}

	add("b", 5, 1)
	add("a", 3, 0)
	add("d", 9, 3)
	add("c", 5, 2)

	err = l.Add(named("e"), roster.SortKey{})
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))

	// Ascending by primary; equal primaries keep secondary order
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(l.Members()))

	front, err := l.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, "a", front.Name)
	assert.Equal(t, []string{"b", "c", "d"}, names(l.Members()))
	assert.Equal(t, 3, l.Len())
}

func TestSortKeyLess(t *testing.T) {
	assert.True(t, roster.SortKey{Primary: 1}.Less(roster.SortKey{Primary: 2}))
	assert.False(t, roster.SortKey{Primary: 2}.Less(roster.SortKey{Primary: 1}))
	assert.True(t, roster.SortKey{Primary: 1, Secondary: 0}.Less(roster.SortKey{Primary: 1, Secondary: 1}))
	assert.False(t, roster.SortKey{Primary: 1, Secondary: 1}.Less(roster.SortKey{Primary: 1, Secondary: 1}))
}

func TestRemoveFrontShrinksEveryOrdering(t *testing.T) {
	build := func(t *testing.T, count int) []roster.Ordering {
		s, err := roster.NewStack(count)
		require.NoError(t, err)
		q, err := roster.NewQueue(count)
		require.NoError(t, err)
		l, err := roster.NewSortedList(count)
		require.NoError(t, err)
		for i := 0; i < count; i++ {
			p := named("p")
			require.NoError(t, s.Push(p))
			require.NoError(t, q.Enqueue(p))
			require.NoError(t, l.Add(p, roster.SortKey{Primary: float64(i)}))
		}
		return []roster.Ordering{s, q, l}
	}

	for _, ordering := range build(t, 4) {
		for expected := 3; expected >= 0; expected-- {
			_, err := ordering.RemoveFront()
			require.NoError(t, err)
			assert.Equal(t, expected, ordering.Len())
		}
		_, err := ordering.RemoveFront()
		assert.Error(t, err)
	}
}
