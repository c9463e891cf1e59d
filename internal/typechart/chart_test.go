package typechart_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/typechart"
)

func TestDefaultChart(t *testing.T) {
	chart := typechart.Default()

	assert.Equal(t, 2.0, chart.Multiplier(entities.TypeFire, entities.TypeGrass))
	assert.Equal(t, 0.5, chart.Multiplier(entities.TypeFire, entities.TypeWater))
	assert.Equal(t, 0.0, chart.Multiplier(entities.TypeElectric, entities.TypeGround))
	assert.Equal(t, 1.0, chart.Multiplier(entities.TypeNormal, entities.TypeFire))
}

func TestMultiplierInvalidTypes(t *testing.T) {
	chart := typechart.Default()

	assert.Equal(t, 1.0, chart.Multiplier(entities.PokeType(-1), entities.TypeFire))
	assert.Equal(t, 1.0, chart.Multiplier(entities.TypeFire, entities.PokeType(99)))
}

// buildCSV produces a header plus rows of identical multipliers, then applies
// row overrides
func buildCSV(value string, overrides map[int]string) string {
	cols := make([]string, entities.NumPokeTypes)
	header := []string{
		"fire", "water", "grass", "bug", "dragon",
		"electric", "fighting", "flying", "ghost", "ground",
		"ice", "normal", "poison", "psychic", "rock",
	}
	for i := range cols {
		cols[i] = value
	}
	rows := []string{strings.Join(header, ",")}
	for i := 0; i < entities.NumPokeTypes; i++ {
		row := strings.Join(cols, ",")
		if override, ok := overrides[i]; ok {
			row = override
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:  "uniform chart parses",
			input: buildCSV("1", nil),
		},
		{
			name:    "missing rows",
			input:   "fire,water\n1,1",
			wantErr: "rows",
		},
		{
			name: "short row",
			input: buildCSV("1", map[int]string{
				3: "1,1,1",
			}),
			wantErr: "columns",
		},
		{
			name: "non-numeric multiplier",
			input: buildCSV("1", map[int]string{
				0: strings.Repeat("1,", entities.NumPokeTypes-1) + "abc",
			}),
			wantErr: "not a number",
		},
		{
			name: "multiplier out of range",
			input: buildCSV("1", map[int]string{
				5: strings.Repeat("1,", entities.NumPokeTypes-1) + "8",
			}),
			wantErr: "outside",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chart, err := typechart.Parse(strings.NewReader(tc.input))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1.0, chart.Multiplier(entities.TypeFire, entities.TypeRock))
		})
	}
}
