package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sriglab/sriggrid/pkg/viatable"
)

func mustTable(t *testing.T, records []viatable.Record) *viatable.Table {
	t.Helper()
	table, err := viatable.New(records)
	require.NoError(t, err)
	return table
}

// uniformTable builds n identical records at the origin.
func uniformTable(t *testing.T, n int) *viatable.Table {
	t.Helper()
	records := make([]viatable.Record, n)
	for i := range records {
		records[i] = viatable.Record{Index: i, ID: 1.0, OD: 2.0}
	}
	return mustTable(t, records)
}

func TestGridConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GridConfig
		wantErr bool
	}{
		{name: "valid", cfg: GridConfig{XStep: 1.88, YStep: 1.63, Columns: 10}},
		{name: "single column", cfg: GridConfig{XStep: 1, YStep: 1, Columns: 1}},
		{name: "zero x step", cfg: GridConfig{XStep: 0, YStep: 1, Columns: 1}, wantErr: true},
		{name: "negative y step", cfg: GridConfig{XStep: 1, YStep: -1, Columns: 1}, wantErr: true},
		{name: "zero columns", cfg: GridConfig{XStep: 1, YStep: 1, Columns: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Two identical records with ten columns land side by side in one row.
func TestPlacementsExampleScenario(t *testing.T) {
	table := mustTable(t, []viatable.Record{
		{Index: 0, X: 0, Y: 0, ID: 1.0, OD: 2.0},
		{Index: 1, X: 0, Y: 0, ID: 1.0, OD: 2.0},
	})
	cfg := GridConfig{XStep: 1.88, YStep: 1.63, Columns: 10}

	placements, err := Placements(table, cfg)
	require.NoError(t, err)
	require.Len(t, placements, 2)

	assert.Equal(t, 0.0, placements[0].Pos.X)
	assert.Equal(t, 0.0, placements[0].Pos.Y)
	assert.Equal(t, 1.88, placements[1].Pos.X)
	assert.Equal(t, 0.0, placements[1].Pos.Y)
	assert.Equal(t, 0, placements[1].Row)
}

// At i = Columns the column resets to 0 and Y advances one step.
func TestPlacementsRowWrap(t *testing.T) {
	cols := 3
	table := uniformTable(t, cols+1)
	cfg := GridConfig{XStep: 2, YStep: 5, Columns: cols}

	placements, err := Placements(table, cfg)
	require.NoError(t, err)

	last := placements[cols]
	assert.Equal(t, 1, last.Row)
	assert.Equal(t, 0, last.Col)
	assert.Equal(t, 0.0, last.Pos.X)
	assert.Equal(t, 5.0, last.Pos.Y)

	prev := placements[cols-1]
	assert.Equal(t, 0, prev.Row)
	assert.Equal(t, float64(cols-1)*2, prev.Pos.X)
}

// Row count is always ceil(n / columns).
func TestPlacementsRowCount(t *testing.T) {
	cfg := GridConfig{XStep: 1, YStep: 1, Columns: 4}

	for n := 1; n <= 13; n++ {
		placements, err := Placements(uniformTable(t, n), cfg)
		require.NoError(t, err)

		maxRow := 0
		for _, p := range placements {
			if p.Row > maxRow {
				maxRow = p.Row
			}
		}
		wantRows := (n + cfg.Columns - 1) / cfg.Columns
		assert.Equal(t, wantRows, maxRow+1, "n=%d", n)

		rows, _ := cfg.GridSize(n)
		assert.Equal(t, wantRows, rows, "GridSize n=%d", n)
	}
}

func TestPlacementsSingleColumn(t *testing.T) {
	table := uniformTable(t, 3)
	cfg := GridConfig{XStep: 1, YStep: 2.5, Columns: 1}

	placements, err := Placements(table, cfg)
	require.NoError(t, err)

	for i, p := range placements {
		assert.Equal(t, 0, p.Col)
		assert.Equal(t, 0.0, p.Pos.X)
		assert.Equal(t, 2.5*float64(i), p.Pos.Y)
	}
}

func TestPlacementsEmptyTable(t *testing.T) {
	table := mustTable(t, nil)
	cfg := GridConfig{XStep: 1, YStep: 1, Columns: 5}

	placements, err := Placements(table, cfg)
	require.NoError(t, err)
	assert.Empty(t, placements)

	rows, cols := cfg.GridSize(0)
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

// Placement order follows ascending stored index, not file order, and
// offsets are relative to each record's own base position.
func TestPlacementsUsesRecordBase(t *testing.T) {
	table := mustTable(t, []viatable.Record{
		{Index: 5, X: 100, Y: 200, ID: 1, OD: 2},
		{Index: 1, X: -10, Y: 0, ID: 1, OD: 2},
	})
	cfg := GridConfig{XStep: 3, YStep: 3, Columns: 2}

	placements, err := Placements(table, cfg)
	require.NoError(t, err)

	// Index 1 processes first (col 0), index 5 second (col 1).
	assert.Equal(t, 1, placements[0].Record.Index)
	assert.Equal(t, -10.0, placements[0].Pos.X)
	assert.Equal(t, 5, placements[1].Record.Index)
	assert.Equal(t, 103.0, placements[1].Pos.X)
}
