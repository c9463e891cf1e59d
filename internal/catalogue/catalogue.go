// Package catalogue provides the species template data the arena draws
// teams from: base stats and evolution lineage per species line, expanded
// into one template per evolution stage.
package catalogue

import (
	_ "embed"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

//go:embed species.yaml
var defaultSpeciesYAML []byte

// speciesRecord is one evolution line in the catalogue file. Stats describe
// the unevolved base stage; later stages derive theirs by applying the
// cumulative stage multipliers.
type speciesRecord struct {
	Type        string           `yaml:"type"`
	Level       int              `yaml:"level"`
	Health      float64          `yaml:"health"`
	BattlePower float64          `yaml:"battle_power"`
	Defence     float64          `yaml:"defence"`
	Speed       float64          `yaml:"speed"`
	Evolution   []entities.Stage `yaml:"evolution"`
}

type speciesFile struct {
	Species []speciesRecord `yaml:"species"`
}

// Catalogue is the read-only list of combatant templates, one per evolution
// stage. Spawning always clones, so battles never mutate catalogue state.
type Catalogue struct {
	templates []*entities.Pokemon
}

// Load reads a species catalogue from a YAML file
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read species catalogue %q", path)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse species catalogue %q", path)
	}
	return cat, nil
}

// Default returns the catalogue compiled into the binary
func Default() *Catalogue {
	cat, err := Parse(defaultSpeciesYAML)
	if err != nil {
		// The embedded catalogue is validated by tests; failing to parse it
		// is a build defect.
		panic(err)
	}
	return cat
}

// Parse builds a catalogue from YAML data
func Parse(data []byte) (*Catalogue, error) {
	var file speciesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "malformed species yaml")
	}
	if len(file.Species) == 0 {
		return nil, errors.InvalidArgument("species catalogue is empty")
	}

	cat := &Catalogue{}
	for _, record := range file.Species {
		if err := record.validate(); err != nil {
			return nil, err
		}
		pokeType, err := entities.ParsePokeType(record.Type)
		if err != nil {
			return nil, err
		}

		// One template per stage, stats scaled by the cumulative stage
		// multipliers.
		scale := 1.0
		for i, stage := range record.Evolution {
			if i > 0 {
				scale *= stage.Multiplier
			}
			cat.templates = append(cat.templates, &entities.Pokemon{
				Name:        stage.Name,
				Level:       record.Level,
				Health:      record.Health * scale,
				BattlePower: record.BattlePower * scale,
				Defence:     record.Defence * scale,
				Speed:       record.Speed * scale,
				Type:        pokeType,
				Evolutions:  record.Evolution,
			})
		}
	}
	return cat, nil
}

func (r *speciesRecord) validate() error {
	vb := errors.NewValidationBuilder()
	if len(r.Evolution) == 0 {
		vb.Field("evolution", "needs at least one stage")
	}
	if r.Level <= 0 {
		vb.Field("level", "must be positive")
	}
	if r.Health <= 0 {
		vb.Field("health", "must be positive")
	}
	if r.BattlePower <= 0 {
		vb.Field("battle_power", "must be positive")
	}
	if r.Defence <= 0 {
		vb.Field("defence", "must be positive")
	}
	if r.Speed <= 0 {
		vb.Field("speed", "must be positive")
	}
	for i, stage := range r.Evolution {
		if stage.Name == "" {
			vb.Fieldf("evolution", "stage %d has no name", i)
		}
		if i > 0 && stage.Multiplier <= 0 {
			vb.Fieldf("evolution", "stage %q needs a positive multiplier", stage.Name)
		}
	}
	return vb.Build()
}

// Size returns the number of templates (every stage counts)
func (c *Catalogue) Size() int {
	return len(c.templates)
}

// Spawn clones the template at the given index into a fresh combatant
func (c *Catalogue) Spawn(index int) (*entities.Pokemon, error) {
	if index < 0 || index >= len(c.templates) {
		return nil, errors.InvalidArgumentf("template index %d out of range [0, %d)", index, len(c.templates))
	}
	clone := *c.templates[index]
	return &clone, nil
}

// SpawnByName clones the template with the given name, matched
// case-insensitively
func (c *Catalogue) SpawnByName(name string) (*entities.Pokemon, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, tmpl := range c.templates {
		if strings.ToLower(tmpl.Name) == needle {
			clone := *tmpl
			return &clone, nil
		}
	}
	return nil, errors.NotFoundf("no species named %q in the catalogue", name)
}

// BaseTemplate finds the unevolved template sharing the given evolution
// lineage. The scan is linear over the catalogue; template counts are small
// and bounded.
func (c *Catalogue) BaseTemplate(line []entities.Stage) (*entities.Pokemon, error) {
	for _, tmpl := range c.templates {
		if entities.SameLineage(tmpl.Evolutions, line) && tmpl.Name == tmpl.Evolutions[0].Name {
			clone := *tmpl
			return &clone, nil
		}
	}
	return nil, errors.NotFound("no catalogue template matches the evolution lineage")
}
