package validator

import (
	"context"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// IsLegalPlacement reports whether writing value at (row, col) keeps the
// grid structurally legal: no duplicate in the same row, column, or 3x3
// box. The target cell is excluded from its own conflict check, so
// re-placing a cell's current value is legal (overwrite semantics).
// Out-of-range coordinates or values are reported as illegal, not as an
// error; the function is total and side-effect-free. Legality says
// nothing about correctness against the solution.
func (v *FastValidator) IsLegalPlacement(g domain.Grid, row, col int, value uint8) bool {
	if row < 0 || row >= 9 || col < 0 || col >= 9 || value < 1 || value > 9 {
		return false
	}
	for j := 0; j < 9; j++ {
		if j != col && g[row][j] == value {
			return false
		}
	}
	for i := 0; i < 9; i++ {
		if i != row && g[i][col] == value {
			return false
		}
	}
	br, bc := 3*(row/3), 3*(col/3)
	for i := br; i < br+3; i++ {
		for j := bc; j < bc+3; j++ {
			if (i != row || j != col) && g[i][j] == value {
				return false
			}
		}
	}
	return true
}

// Validate checks an entire grid for row/col/box conflicts.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
