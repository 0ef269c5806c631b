package layout

import (
	"errors"
	"fmt"
	"path"
)

// ErrNoSelection is returned when no footprint matches the selection,
// rather than silently doing nothing.
var ErrNoSelection = errors.New("no footprints selected")

// FootprintState is the distribute view of a footprint: its position in
// the board's footprint list, reference designator, and current
// coordinates in mm. Index, not Reference, identifies the footprint:
// references duplicate freely on real boards (every unannotated
// footprint carries "REF**").
type FootprintState struct {
	Index     int
	Reference string
	X         float64
	Y         float64
}

// Move is a computed footprint relocation, keyed by footprint index.
// Distribution is pure: callers apply the moves to the document
// themselves.
type Move struct {
	Index int
	X     float64
	Y     float64
}

// Select filters footprints whose reference matches any of the glob
// patterns (e.g. "C*", "A1?", or a literal "R5"). Board order is kept.
func Select(fps []FootprintState, patterns []string) ([]FootprintState, error) {
	var selected []FootprintState
	for _, fp := range fps {
		for _, pat := range patterns {
			ok, err := path.Match(pat, fp.Reference)
			if err != nil {
				return nil, fmt.Errorf("bad selection pattern %q: %w", pat, err)
			}
			if ok {
				selected = append(selected, fp)
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return selected, nil
}

// DistributeX spaces the selected footprints along X: the nth footprint,
// in selection order, moves xStep*n from its current position. Y is
// untouched.
func DistributeX(selected []FootprintState, xStep float64) ([]Move, error) {
	if xStep <= 0 {
		return nil, fmt.Errorf("X step must be > 0, got %v", xStep)
	}
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	moves := make([]Move, len(selected))
	for n, fp := range selected {
		moves[n] = Move{
			Index: fp.Index,
			X:     fp.X + xStep*float64(n),
			Y:     fp.Y,
		}
	}
	return moves, nil
}

// DistributeY spaces the selected footprints along Y, leaving X alone.
func DistributeY(selected []FootprintState, yStep float64) ([]Move, error) {
	if yStep <= 0 {
		return nil, fmt.Errorf("Y step must be > 0, got %v", yStep)
	}
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	moves := make([]Move, len(selected))
	for n, fp := range selected {
		moves[n] = Move{
			Index: fp.Index,
			X:     fp.X,
			Y:     fp.Y + yStep*float64(n),
		}
	}
	return moves, nil
}

// DistributeGrid arranges the selected footprints on a grid. Footprints
// are first put in natural reference order (A2 before A10), then the
// nth lands in row n/Columns, column n%Columns, offset from its own
// current position exactly as via placement offsets table records.
func DistributeGrid(selected []FootprintState, cfg GridConfig) ([]Move, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	ordered := make([]FootprintState, len(selected))
	copy(ordered, selected)
	SortByReference(ordered)

	moves := make([]Move, len(ordered))
	for n, fp := range ordered {
		row := n / cfg.Columns
		col := n % cfg.Columns
		moves[n] = Move{
			Index: fp.Index,
			X:     fp.X + cfg.XStep*float64(col),
			Y:     fp.Y + cfg.YStep*float64(row),
		}
	}
	return moves, nil
}
