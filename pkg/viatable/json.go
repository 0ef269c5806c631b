package viatable

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// jsonRecord matches one value of the JSON table object. Pointers detect
// absent fields so a missing diameter is reported as such rather than
// parsed as zero.
type jsonRecord struct {
	X  *float64 `json:"X"`
	Y  *float64 `json:"Y"`
	ID *float64 `json:"ID"`
	OD *float64 `json:"OD"`
}

// ReadJSON parses a via table from its JSON form: an object mapping
// stringified indexes to {X, Y, ID, OD} objects. Key order in the file is
// irrelevant; records are ordered by numeric index.
func ReadJSON(r io.Reader) (*Table, error) {
	var raw map[string]jsonRecord

	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode via table JSON: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for key, jr := range raw {
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("key %q is not an integer index", key)
		}

		for _, f := range []struct {
			name  string
			value *float64
		}{
			{"X", jr.X}, {"Y", jr.Y}, {"ID", jr.ID}, {"OD", jr.OD},
		} {
			if f.value == nil {
				return nil, fmt.Errorf("index %s: missing field %q", key, f.name)
			}
		}

		records = append(records, Record{
			Index: index,
			X:     *jr.X,
			Y:     *jr.Y,
			ID:    *jr.ID,
			OD:    *jr.OD,
		})
	}

	return New(records)
}
