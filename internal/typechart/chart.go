// Package typechart loads and serves the elemental effectiveness matrix.
// The chart is loaded explicitly and passed to the battle orchestrator; there
// is no package-level table.
package typechart

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

//go:embed type_effectiveness.csv
var defaultChartCSV []byte

// Multipliers outside this range indicate a malformed chart file.
const (
	minMultiplier = 0.0
	maxMultiplier = 4.0
)

// Chart is the square effectiveness matrix: rows are the attacking type,
// columns the defending type. Immutable after load.
type Chart struct {
	table [entities.NumPokeTypes][entities.NumPokeTypes]float64
}

// Multiplier returns the effectiveness of one type attacking another, in
// [0, 4]. Types outside the enumeration attack and defend at 1x.
func (c *Chart) Multiplier(attack, defend entities.PokeType) float64 {
	if !attack.Valid() || !defend.Valid() {
		return 1
	}
	return c.table[attack][defend]
}

// Load reads an effectiveness chart from a CSV file: one header row, then
// one row per attacking type in enumeration order.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path) // #nosec G304 -- path is operator-supplied config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open type chart %q", path)
	}
	defer func() { _ = f.Close() }()

	chart, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse type chart %q", path)
	}
	return chart, nil
}

// Default returns the chart compiled into the binary
func Default() *Chart {
	chart, err := Parse(bytes.NewReader(defaultChartCSV))
	if err != nil {
		// The embedded chart is validated by tests; a parse failure here is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return chart
}

// Parse reads an effectiveness chart from CSV data
func Parse(r io.Reader) (*Chart, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "malformed csv")
	}
	if len(records) != entities.NumPokeTypes+1 {
		return nil, errors.InvalidArgumentf(
			"expected header plus %d rows, got %d rows", entities.NumPokeTypes, len(records))
	}

	chart := &Chart{}
	for i, record := range records[1:] {
		if len(record) != entities.NumPokeTypes {
			return nil, errors.InvalidArgumentf(
				"row %d: expected %d columns, got %d", i+1, entities.NumPokeTypes, len(record))
		}
		for j, field := range record {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.InvalidArgumentf("row %d column %d: %q is not a number", i+1, j+1, field)
			}
			if value < minMultiplier || value > maxMultiplier {
				return nil, errors.InvalidArgumentf(
					"row %d column %d: multiplier %g outside [%g, %g]", i+1, j+1, value, minMultiplier, maxMultiplier)
			}
			chart.table[i][j] = value
		}
	}
	return chart, nil
}
