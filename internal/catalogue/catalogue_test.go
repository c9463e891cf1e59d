package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kyblue11/Pokemon-DSA/internal/catalogue"
	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

const miniCatalogue = `
species:
  - type: fire
    level: 5
    health: 30
    battle_power: 14
    defence: 6
    speed: 12
    evolution:
      - name: Charmander
        multiplier: 1.0
      - name: Charmeleon
        multiplier: 1.5
      - name: Charizard
        multiplier: 1.5
  - type: water
    level: 5
    health: 34
    battle_power: 11
    defence: 9
    speed: 9
    evolution:
      - name: Squirtle
        multiplier: 1.0
`

func TestParseExpandsStages(t *testing.T) {
	cat, err := catalogue.Parse([]byte(miniCatalogue))
	require.NoError(t, err)

	// Three fire stages plus one water stage
	assert.Equal(t, 4, cat.Size())

	base, err := cat.SpawnByName("Charmander")
	require.NoError(t, err)
	assert.Equal(t, 30.0, base.Health)
	assert.Equal(t, 14.0, base.BattlePower)
	assert.Equal(t, entities.TypeFire, base.Type)

	// Later stages carry cumulative multipliers
	mid, err := cat.SpawnByName("Charmeleon")
	require.NoError(t, err)
	assert.Equal(t, 45.0, mid.Health)
	assert.Equal(t, 21.0, mid.BattlePower)

	final, err := cat.SpawnByName("Charizard")
	require.NoError(t, err)
	assert.Equal(t, 67.5, final.Health)
	assert.Equal(t, 27.0, final.Speed)
}

func TestParseRejectsBadRecords(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "empty file",
			input: "species: []",
		},
		{
			name: "missing stats",
			input: `
species:
  - type: fire
    evolution:
      - name: Charmander
        multiplier: 1.0
`,
		},
		{
			name: "unknown type",
			input: `
species:
  - type: fairy
    level: 5
    health: 30
    battle_power: 14
    defence: 6
    speed: 12
    evolution:
      - name: Charmander
        multiplier: 1.0
`,
		},
		{
			name: "stage without multiplier",
			input: `
species:
  - type: fire
    level: 5
    health: 30
    battle_power: 14
    defence: 6
    speed: 12
    evolution:
      - name: Charmander
        multiplier: 1.0
      - name: Charmeleon
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalogue.Parse([]byte(tc.input))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestDefaultCatalogueCoversAllTypes(t *testing.T) {
	cat := catalogue.Default()
	require.Positive(t, cat.Size())

	seen := make(map[entities.PokeType]bool)
	for i := 0; i < cat.Size(); i++ {
		p, err := cat.Spawn(i)
		require.NoError(t, err)
		seen[p.Type] = true
	}
	assert.Len(t, seen, entities.NumPokeTypes)
}

func TestSpawnClones(t *testing.T) {
	cat, err := catalogue.Parse([]byte(miniCatalogue))
	require.NoError(t, err)

	first, err := cat.Spawn(0)
	require.NoError(t, err)
	first.SetHealth(-5)

	second, err := cat.Spawn(0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, second.Health)
}

func TestSpawnOutOfRange(t *testing.T) {
	cat, err := catalogue.Parse([]byte(miniCatalogue))
	require.NoError(t, err)

	_, err = cat.Spawn(-1)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = cat.Spawn(cat.Size())
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSpawnByName(t *testing.T) {
	cat, err := catalogue.Parse([]byte(miniCatalogue))
	require.NoError(t, err)

	p, err := cat.SpawnByName("  squirtle ")
	require.NoError(t, err)
	assert.Equal(t, "Squirtle", p.Name)

	_, err = cat.SpawnByName("Mewtwo")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestBaseTemplate(t *testing.T) {
	cat, err := catalogue.Parse([]byte(miniCatalogue))
	require.NoError(t, err)

	evolved, err := cat.SpawnByName("Charizard")
	require.NoError(t, err)

	base, err := cat.BaseTemplate(evolved.Evolutions)
	require.NoError(t, err)
	assert.Equal(t, "Charmander", base.Name)
	assert.Equal(t, 30.0, base.Health)

	_, err = cat.BaseTemplate([]entities.Stage{{Name: "Mewtwo"}})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
