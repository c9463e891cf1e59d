package roster

import (
	"strings"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// TeamLimit is the maximum number of Pokemon a roster can hold
const TeamLimit = 6

// TemplateSource resolves a combatant back to its unevolved base template by
// evolution-lineage equality. Implemented by catalogue.Catalogue.
type TemplateSource interface {
	BaseTemplate(line []entities.Stage) (*entities.Pokemon, error)
}

// Roster owns a working ordering plus the pristine pre-battle member list.
// Combat mutates the ordering (removals, rotations, resorts); the snapshot
// keeps the original members in insertion order so the team can be
// regenerated between battles. The snapshot is never used as live storage:
// every assembly builds a fresh ordering populated with references to the
// same combatants.
type Roster struct {
	snapshot  []*entities.Pokemon
	ordering  Ordering
	mode      BattleMode
	criterion Criterion
	reversed  bool
	assembled bool
}

// New creates a roster from the given members, keeping their order as the
// pristine snapshot. Fails when the member list is empty or exceeds
// TeamLimit.
func New(members []*entities.Pokemon) (*Roster, error) {
	if len(members) == 0 {
		return nil, errors.InvalidArgument("roster needs at least one pokemon")
	}
	if len(members) > TeamLimit {
		return nil, errors.ResourceExhaustedf(
			"roster holds at most %d pokemon, got %d", TeamLimit, len(members))
	}

	snapshot := make([]*entities.Pokemon, len(members))
	copy(snapshot, members)
	return &Roster{snapshot: snapshot}, nil
}

// Assemble builds a fresh ordering for the given mode. The first assembly
// draws from the pristine snapshot; later assemblies draw from the current
// live members so fainted combatants stay gone. Optimise mode requires a
// recognized criterion; the other modes ignore it.
func (r *Roster) Assemble(mode BattleMode, criterion Criterion) error {
	if !mode.Valid() {
		return errors.InvalidArgumentf("unknown battle mode: %d", int(mode))
	}
	if criterion == "" {
		criterion = CriterionHealth
	}
	if mode == ModeOptimise && !criterion.Valid() {
		return errors.InvalidArgumentf("%q is not a recognized sort criterion", string(criterion))
	}

	members := r.Members()
	var ordering Ordering
	switch mode {
	case ModeSet:
		stack, err := NewStack(len(members))
		if err != nil {
			return err
		}
		for _, p := range members {
			if err := stack.Push(p); err != nil {
				return err
			}
		}
		ordering = stack
	case ModeRotate:
		queue, err := NewQueue(len(members))
		if err != nil {
			return err
		}
		for _, p := range members {
			if err := queue.Enqueue(p); err != nil {
				return err
			}
		}
		ordering = queue
	case ModeOptimise:
		list, err := NewSortedList(len(members))
		if err != nil {
			return err
		}
		for i, p := range members {
			key := SortKey{Primary: criterion.Value(p), Secondary: float64(i)}
			if err := list.Add(p, key); err != nil {
				return err
			}
		}
		ordering = list
	}

	r.ordering = ordering
	r.mode = mode
	r.criterion = criterion
	r.assembled = true
	return nil
}

// Resort re-keys every living member under a new criterion, applying the
// current sort direction to both the stat and the position tie-break. Valid
// only while the roster holds a priority ordering.
func (r *Roster) Resort(criterion Criterion) error {
	list, ok := r.ordering.(*SortedList)
	if !ok {
		return errors.InvalidArgument("resort requires a roster assembled in optimise mode")
	}
	if !criterion.Valid() {
		return errors.InvalidArgumentf("%q is not a recognized sort criterion", string(criterion))
	}

	direction := 1.0
	if r.reversed {
		direction = -1.0
	}

	members := list.Members()
	resorted, err := NewSortedList(len(members))
	if err != nil {
		return err
	}
	for i, p := range members {
		key := SortKey{
			Primary:   direction * criterion.Value(p),
			Secondary: direction * float64(i),
		}
		if err := resorted.Add(p, key); err != nil {
			return err
		}
	}

	r.ordering = resorted
	r.criterion = criterion
	return nil
}

// ToggleDirection flips the sort direction used by Resort. Toggling an odd
// number of times leaves the roster sorting in reverse.
func (r *Roster) ToggleDirection() {
	r.reversed = !r.reversed
}

// Reversed reports whether the sort direction is currently flipped
func (r *Roster) Reversed() bool {
	return r.reversed
}

// Special applies the mode's mid-battle shuffle: set mode reverses the front
// half, rotate mode reverses the back half, and optimise mode flips the sort
// direction permanently and resorts.
func (r *Roster) Special() error {
	if !r.assembled {
		return errors.FailedPrecondition("roster has not been assembled")
	}
	switch r.mode {
	case ModeSet:
		r.ordering.(*Stack).ReverseFrontHalf()
	case ModeRotate:
		r.ordering.(*Queue).ReverseBackHalf()
	case ModeOptimise:
		r.ToggleDirection()
		return r.Resort(r.criterion)
	}
	return nil
}

// Rotate cycles the front combatant to the back. Valid only in rotate mode.
func (r *Roster) Rotate() error {
	queue, ok := r.ordering.(*Queue)
	if !ok {
		return errors.InvalidArgument("rotate requires a roster assembled in rotate mode")
	}
	return queue.Rotate()
}

// Front peeks at the combatant currently exposed to battle
func (r *Roster) Front() (*entities.Pokemon, error) {
	if !r.assembled {
		return nil, errors.FailedPrecondition("roster has not been assembled")
	}
	return r.ordering.Front()
}

// PopFront removes the front combatant, typically because it fainted
func (r *Roster) PopFront() (*entities.Pokemon, error) {
	if !r.assembled {
		return nil, errors.FailedPrecondition("roster has not been assembled")
	}
	return r.ordering.RemoveFront()
}

// Size returns the number of combatants still in the ordering
func (r *Roster) Size() int {
	if !r.assembled {
		return len(r.snapshot)
	}
	return r.ordering.Len()
}

// Mode returns the battle mode the roster was last assembled for
func (r *Roster) Mode() BattleMode {
	return r.mode
}

// Criterion returns the sort criterion the roster was last keyed by
func (r *Roster) Criterion() Criterion {
	return r.criterion
}

// Regenerate resets every snapshot member to its unevolved base template,
// resolved through the source by evolution-lineage equality, then reassembles
// the full team with the last-used mode and criterion. Level and experience
// survive regeneration; name and combat stats revert.
func (r *Roster) Regenerate(src TemplateSource) error {
	if !r.assembled {
		return errors.FailedPrecondition("roster has not been assembled")
	}
	for _, p := range r.snapshot {
		base, err := src.BaseTemplate(p.Evolutions)
		if err != nil {
			return errors.Wrapf(err, "no base template for %s", p.Name)
		}
		p.Name = base.Name
		p.SetHealth(base.Health)
		p.BattlePower = base.BattlePower
		p.Defence = base.Defence
		p.Speed = base.Speed
	}

	// Reassemble from the snapshot so fainted members rejoin the team.
	r.assembled = false
	return r.Assemble(r.mode, r.criterion)
}

// Members returns the combatants in their current front-to-back order, or in
// snapshot order when the roster has not been assembled yet
func (r *Roster) Members() []*entities.Pokemon {
	if !r.assembled {
		members := make([]*entities.Pokemon, len(r.snapshot))
		copy(members, r.snapshot)
		return members
	}
	return r.ordering.Members()
}

// String renders the roster one combatant per line, front first
func (r *Roster) String() string {
	var b strings.Builder
	for _, p := range r.Members() {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	return b.String()
}
