package domain

import "time"

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint reveals the solution value for one cell. Advisory only: the
// board is not written until the client plays the value as a move.
type Hint struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Board is a persisted Sudoku puzzle paired with its known solution.
// The solution is trusted input from the board source and is never
// derived by this service.
type Board struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Puzzle     Grid       `gorm:"type:text;not null" json:"puzzle"`
	Solution   Grid       `gorm:"type:text;not null" json:"solution"`
	Difficulty Difficulty `gorm:"size:10;not null;default:medium;index" json:"difficulty"`
	CreatedAt  time.Time  `json:"created_at"`

	// Aggregate play stats, maintained by explicit store operations.
	TimesPlayed    int     `gorm:"default:0" json:"times_played"`
	TimesCompleted int     `gorm:"default:0" json:"times_completed"`
	CompletionRate float64 `gorm:"default:0" json:"completion_rate"`
	FastestTime    *int    `json:"fastest_time,omitempty"`
}

// User is an account, either registered or guest.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        *string   `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	IsGuest      bool      `gorm:"default:true" json:"is_guest"`
	CreatedAt    time.Time `json:"created_at"`
	HighScore    int       `gorm:"default:0" json:"high_score"`

	CompletedBoardsCount  int `gorm:"default:0" json:"-"`
	IncompleteBoardsCount int `gorm:"default:0" json:"-"`
	StreakCount           int `gorm:"default:0" json:"-"`

	CompletedEasy   int `gorm:"default:0" json:"-"`
	CompletedMedium int `gorm:"default:0" json:"-"`
	CompletedHard   int `gorm:"default:0" json:"-"`
	CompletedExpert int `gorm:"default:0" json:"-"`

	PlayedEasy   int `gorm:"default:0" json:"-"`
	PlayedMedium int `gorm:"default:0" json:"-"`
	PlayedHard   int `gorm:"default:0" json:"-"`
	PlayedExpert int `gorm:"default:0" json:"-"`

	FastestEasy   *int `json:"-"`
	FastestMedium *int `json:"-"`
	FastestHard   *int `json:"-"`
	FastestExpert *int `json:"-"`
}

// GameSession is the transient play state for one user. At most one
// exists per user (enforced by the unique index); it is removed on
// completion or abandonment, never archived in place.
type GameSession struct {
	ID      uint `gorm:"primarykey" json:"id"`
	UserID  uint `gorm:"uniqueIndex;not null" json:"user_id"`
	BoardID uint `gorm:"not null" json:"board_id"`

	Progress             Grid    `gorm:"type:text;not null" json:"board_progress"`
	CompletionPercentage float64 `gorm:"default:0" json:"completion_percentage"`
	Score                int     `gorm:"default:0" json:"current_score"`
	HintsUsed            int     `gorm:"default:0" json:"hints_used"`
	MistakesMade         int     `gorm:"default:0" json:"mistakes_made"`

	StartedAt      time.Time `json:"started_at"`
	LastActiveAt   time.Time `json:"last_active_at"`
	ElapsedSeconds int       `gorm:"default:0" json:"elapsed_time"`
	Paused         bool      `gorm:"default:false" json:"is_paused"`
}

// CompletedBoard is the immutable record written when a session is
// finalized. Never mutated after creation.
type CompletedBoard struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	BoardID        uint      `gorm:"not null" json:"board_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalTimeSpent int       `gorm:"not null" json:"total_time_spent"`
	HintsUsed      int       `gorm:"not null;default:0" json:"hints_used"`
	MistakesMade   int       `gorm:"not null;default:0" json:"mistakes_made"`
	CompletedAt    time.Time `json:"completed_at"`
}

// IncompleteBoard records a session the user walked away from when
// starting a new one.
type IncompleteBoard struct {
	ID                   uint    `gorm:"primarykey" json:"id"`
	UserID               uint    `gorm:"not null;index" json:"user_id"`
	BoardID              uint    `gorm:"not null" json:"board_id"`
	CompletionPercentage float64 `gorm:"default:0" json:"completion_percentage"`
	Score                int     `gorm:"default:0" json:"score"`
}
