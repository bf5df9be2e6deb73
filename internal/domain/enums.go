package domain

import "strings"

// Difficulty labels a board's grading. Stored as its string form.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// Difficulties lists all known levels in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

// ParseDifficulty normalizes a user-supplied difficulty string.
// Unknown input falls back to Medium; empty input means "any".
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	case "", "random", "any":
		return ""
	default:
		return Medium
	}
}
