package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Grid is a 9x9 Sudoku grid. Zero means an empty cell.
type Grid [9][9]uint8

// Filled returns the number of non-zero cells.
func (g Grid) Filled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell holds a value.
func (g Grid) Full() bool { return g.Filled() == 81 }

// Value serializes the grid as a JSON array for TEXT columns.
func (g Grid) Value() (driver.Value, error) {
	b, err := json.Marshal([9][9]uint8(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores a grid from its JSON column representation.
func (g *Grid) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*g = Grid{}
		return nil
	default:
		return fmt.Errorf("grid: cannot scan %T", src)
	}
	return json.Unmarshal(data, (*[9][9]uint8)(g))
}
