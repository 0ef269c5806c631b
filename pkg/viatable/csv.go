package viatable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvColumns is the required header set, in canonical write order.
var csvColumns = []string{"index", "X", "Y", "ID", "OD"}

// ReadCSV parses a via table from CSV. The header row must contain the
// columns index,X,Y,ID,OD (any order); rows with missing or non-numeric
// fields are rejected.
func ReadCSV(r io.Reader) (*Table, error) {
	rdr := csv.NewReader(r)
	rdr.TrimLeadingSpace = true

	header, err := rdr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Map column name to field position, DictReader style.
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range csvColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("CSV header missing required column %q", name)
		}
	}

	var records []Record
	for row := 2; ; row++ {
		fields, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		rec, err := parseCSVRecord(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, rec)
	}

	return New(records)
}

func parseCSVRecord(fields []string, cols map[string]int) (Record, error) {
	get := func(name string) (string, error) {
		i := cols[name]
		if i >= len(fields) {
			return "", fmt.Errorf("missing value for column %q", name)
		}
		return fields[i], nil
	}

	var rec Record

	s, err := get("index")
	if err != nil {
		return rec, err
	}
	rec.Index, err = strconv.Atoi(s)
	if err != nil {
		return rec, fmt.Errorf("column index: %q is not an integer", s)
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"X", &rec.X},
		{"Y", &rec.Y},
		{"ID", &rec.ID},
		{"OD", &rec.OD},
	} {
		s, err := get(f.name)
		if err != nil {
			return rec, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rec, fmt.Errorf("column %s: %q is not a number", f.name, s)
		}
		*f.dst = v
	}

	return rec, nil
}

// WriteCSV emits the table as CSV with the canonical index,X,Y,ID,OD
// columns, sorted by index.
func (t *Table) WriteCSV(w io.Writer) error {
	wr := csv.NewWriter(w)

	if err := wr.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range t.records {
		row := []string{
			strconv.Itoa(rec.Index),
			formatFloat(rec.X),
			formatFloat(rec.Y),
			formatFloat(rec.ID),
			formatFloat(rec.OD),
		}
		if err := wr.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for index %d: %w", rec.Index, err)
		}
	}

	wr.Flush()
	return wr.Error()
}

// formatFloat writes the shortest decimal form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
