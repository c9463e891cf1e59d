package catalogue

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

// Picker draws random teams from a catalogue using an injected dice roller,
// so selection is deterministic under a stub roller in tests.
type Picker struct {
	catalogue *Catalogue
	roller    dice.Roller
}

// PickerConfig holds the dependencies for a Picker
type PickerConfig struct {
	Catalogue *Catalogue
	Roller    dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *PickerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalogue == nil {
		vb.RequiredField("Catalogue")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// NewPicker creates a picker with the provided dependencies
func NewPicker(cfg *PickerConfig) (*Picker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Picker{
		catalogue: cfg.Catalogue,
		roller:    cfg.Roller,
	}, nil
}

// PickRandom spawns size combatants chosen by die roll over the template
// list. Duplicates are allowed, matching a random draft.
func (p *Picker) PickRandom(size int) ([]*entities.Pokemon, error) {
	if size < 1 {
		return nil, errors.InvalidArgumentf("team size must be at least 1, got %d", size)
	}

	team := make([]*entities.Pokemon, 0, size)
	for i := 0; i < size; i++ {
		face, err := p.roller.Roll(p.catalogue.Size())
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll for a species")
		}
		member, err := p.catalogue.Spawn(face - 1)
		if err != nil {
			return nil, err
		}
		team = append(team, member)
	}
	return team, nil
}

// PickByName spawns one combatant per name, preserving order. The manual
// draft path: an unknown name aborts the whole selection.
func (p *Picker) PickByName(names []string) ([]*entities.Pokemon, error) {
	if len(names) == 0 {
		return nil, errors.InvalidArgument("at least one species name is required")
	}

	team := make([]*entities.Pokemon, 0, len(names))
	for _, name := range names {
		member, err := p.catalogue.SpawnByName(name)
		if err != nil {
			return nil, err
		}
		team = append(team, member)
	}
	return team, nil
}
