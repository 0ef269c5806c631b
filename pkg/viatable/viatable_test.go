package viatable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "index,X,Y,ID,OD\n0,0,0,1.0,2.0\n1,0.5,-1.25,1.0,2.0\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	want := []Record{
		{Index: 0, X: 0, Y: 0, ID: 1.0, OD: 2.0},
		{Index: 1, X: 0.5, Y: -1.25, ID: 1.0, OD: 2.0},
	}
	if diff := cmp.Diff(want, table.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVColumnOrderIrrelevant(t *testing.T) {
	input := "OD,ID,Y,X,index\n2.0,1.0,3.5,7.25,4\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Records()[0]
	assert.Equal(t, 4, rec.Index)
	assert.Equal(t, 7.25, rec.X)
	assert.Equal(t, 3.5, rec.Y)
	assert.Equal(t, 2.0, rec.OD)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: "missing header",
		},
		{
			name:    "missing column",
			input:   "index,X,Y,ID\n0,0,0,1\n",
			wantErr: `missing required column "OD"`,
		},
		{
			name:    "non-numeric field",
			input:   "index,X,Y,ID,OD\n0,abc,0,1,2\n",
			wantErr: "not a number",
		},
		{
			name:    "non-integer index",
			input:   "index,X,Y,ID,OD\nzero,0,0,1,2\n",
			wantErr: "not an integer",
		},
		{
			name:    "zero inner diameter",
			input:   "index,X,Y,ID,OD\n0,0,0,0,2\n",
			wantErr: "inner diameter must be > 0",
		},
		{
			name:    "outer smaller than inner",
			input:   "index,X,Y,ID,OD\n0,0,0,2,1\n",
			wantErr: "smaller than inner diameter",
		},
		{
			name:    "duplicate index",
			input:   "index,X,Y,ID,OD\n0,0,0,1,2\n0,1,1,1,2\n",
			wantErr: "duplicate index",
		},
		{
			name:    "negative index",
			input:   "index,X,Y,ID,OD\n-1,0,0,1,2\n",
			wantErr: "negative index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadJSON(t *testing.T) {
	// Key order deliberately scrambled; output order must be by index.
	input := `{
		"2": {"X": 2.0, "Y": 0.5, "ID": 0.6, "OD": 1.2},
		"0": {"X": 0.0, "Y": 0.0, "ID": 1.0, "OD": 2.0},
		"1": {"X": 1.0, "Y": 0.0, "ID": 1.0, "OD": 2.0}
	}`

	table, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	var indexes []int
	for _, rec := range table.Records() {
		indexes = append(indexes, rec.Index)
	}
	assert.Equal(t, []int{0, 1, 2}, indexes)
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "malformed", input: `{"0": `, wantErr: "decode"},
		{name: "non-integer key", input: `{"a": {"X":0,"Y":0,"ID":1,"OD":2}}`, wantErr: "not an integer index"},
		{name: "missing field", input: `{"0": {"X":0,"Y":0,"ID":1}}`, wantErr: `missing field "OD"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// JSON in, CSV out, CSV back in: values must survive the trip.
func TestJSONToCSVRoundTrip(t *testing.T) {
	input := `{
		"0": {"X": 0, "Y": 0, "ID": 1.0, "OD": 2.0},
		"10": {"X": -3.75, "Y": 18.0001, "ID": 0.3, "OD": 0.6},
		"2": {"X": 1.88, "Y": 1.63, "ID": 1.0, "OD": 2.0}
	}`

	table, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	reparsed, err := ReadCSV(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(table.Records(), reparsed.Records()); diff != "" {
		t.Errorf("round trip mismatch (-orig +reparsed):\n%s", diff)
	}
}

func TestWriteCSVHeader(t *testing.T) {
	table, err := New([]Record{{Index: 0, X: 1, Y: 2, ID: 0.5, OD: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "index,X,Y,ID,OD", lines[0])
	assert.Equal(t, "0,1,2,0.5,1", lines[1])
}
