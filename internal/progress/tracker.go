// Package progress applies single-cell moves and hints to an active
// game session: rule validation, elapsed-time accounting, mistake and
// hint counters, completion percentage, and score. It is pure logic
// over the session value it is handed; persistence and per-session
// serialization are the caller's concern.
package progress

import (
	"time"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

// Rules decides structural legality of a single placement.
type Rules interface {
	IsLegalPlacement(g domain.Grid, row, col int, value uint8) bool
}

type Tracker struct {
	rules Rules
}

func New(rules Rules) *Tracker { return &Tracker{rules: rules} }

// ApplyMove writes value at (row, col) on the session's board and
// updates all derived state together: elapsed time, mistake count,
// completion percentage, and score. An illegal placement returns
// domain.ErrInvalidMove and leaves the session untouched; time and
// counters do not advance on rejection.
//
// A structurally legal but factually wrong value is still written (the
// player may fill any legal digit) and costs exactly one mistake.
func (t *Tracker) ApplyMove(s *domain.GameSession, b *domain.Board, row, col int, value uint8, now time.Time) error {
	if !t.rules.IsLegalPlacement(s.Progress, row, col, value) {
		return domain.ErrInvalidMove
	}

	// Time accounting. A move on a paused session resumes it without
	// charging the pause gap; a backward clock must not subtract time.
	if s.Paused {
		s.Paused = false
	} else {
		delta := int(now.Sub(s.LastActiveAt).Seconds())
		if delta > 0 {
			s.ElapsedSeconds += delta
		}
	}
	s.LastActiveAt = now

	if value != b.Solution[row][col] {
		s.MistakesMade++
	}

	s.Progress[row][col] = value
	s.CompletionPercentage = Completion(s.Progress)
	s.Score = Score(s.ElapsedSeconds, s.MistakesMade, s.HintsUsed, s.CompletionPercentage)
	return nil
}

// RequestHint reveals the solution value for the first empty cell in
// row-major order. The cell is not written; the hint is advisory and
// the client decides whether to play it. Costs one hint and recomputes
// the score against the unchanged completion percentage. A full board
// returns domain.ErrNoHintsAvailable without touching any counter.
func (t *Tracker) RequestHint(s *domain.GameSession, b *domain.Board) (domain.Hint, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.Progress[r][c] != 0 {
				continue
			}
			s.HintsUsed++
			s.Score = Score(s.ElapsedSeconds, s.MistakesMade, s.HintsUsed, s.CompletionPercentage)
			return domain.Hint{Row: r, Col: c, Value: b.Solution[r][c]}, nil
		}
	}
	return domain.Hint{}, domain.ErrNoHintsAvailable
}

// SetPaused toggles the pause state. Pausing settles the elapsed time
// accrued so far; resuming restarts the clock from now so the paused
// gap is never charged. Both are idempotent.
func (t *Tracker) SetPaused(s *domain.GameSession, paused bool, now time.Time) {
	if s.Paused == paused {
		return
	}
	if paused {
		delta := int(now.Sub(s.LastActiveAt).Seconds())
		if delta > 0 {
			s.ElapsedSeconds += delta
		}
	}
	s.Paused = paused
	s.LastActiveAt = now
}

// IsSolved reports whether the session's board is fully filled and
// matches the solution exactly.
func IsSolved(s *domain.GameSession, b *domain.Board) bool {
	return s.Progress == b.Solution
}
