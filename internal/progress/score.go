package progress

import (
	"math"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

const (
	baseScore         = 10000
	timePenaltyPerMin = 100
	penaltyPerMistake = 500
	penaltyPerHint    = 750
	totalCells        = 81
)

// Score derives the current score from play metrics. Penalties are
// subtracted from the base, the result is scaled by completion with
// integer truncation, and the score never goes below zero.
func Score(elapsedSeconds, mistakes, hints int, completion float64) int {
	raw := baseScore
	raw -= elapsedSeconds / 60 * timePenaltyPerMin
	raw -= mistakes * penaltyPerMistake
	raw -= hints * penaltyPerHint
	scaled := int(float64(raw) * completion / 100)
	if scaled < 0 {
		return 0
	}
	return scaled
}

// Completion is the fraction of filled cells as a percentage with
// two-decimal precision. A full board is exactly 100.00.
func Completion(g domain.Grid) float64 {
	pct := float64(g.Filled()) / totalCells * 100
	return math.Round(pct*100) / 100
}
