package ports

import (
	"context"
	"time"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

// Clock supplies the current time. Callers rely on it being
// non-decreasing per call site; the tracker clamps regardless.
type Clock interface {
	Now() time.Time
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	IsLegalPlacement(g domain.Grid, row, col int, value uint8) bool
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// BoardStore persists puzzle boards and their play stats. Stats change
// only through the explicit operations below, never by blind patching.
type BoardStore interface {
	Create(ctx context.Context, b *domain.Board) error
	Get(ctx context.Context, id uint) (*domain.Board, error)
	List(ctx context.Context, d domain.Difficulty) ([]domain.Board, error)
	Random(ctx context.Context, d domain.Difficulty) (*domain.Board, error)
	Count(ctx context.Context, d domain.Difficulty) (int64, error)
	Exists(ctx context.Context, puzzle, solution domain.Grid) (bool, error)
	IncrementPlayed(ctx context.Context, id uint) error
	RecordCompletion(ctx context.Context, id uint, seconds int) error
	SetDifficulty(ctx context.Context, id uint, d domain.Difficulty) error
	Delete(ctx context.Context, id uint) error
}

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uint) error
}

// SessionStore persists the single active session per user. Save and
// Delete are durable and consistent for one session key.
type SessionStore interface {
	Create(ctx context.Context, s *domain.GameSession) error
	GetByUserID(ctx context.Context, userID uint) (*domain.GameSession, error)
	Save(ctx context.Context, s *domain.GameSession) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]domain.GameSession, error)
}

// CompletionStore is the sink for finalized and abandoned games.
type CompletionStore interface {
	Create(ctx context.Context, c *domain.CompletedBoard) error
	ListByUser(ctx context.Context, userID uint) ([]domain.CompletedBoard, error)
	CreateIncomplete(ctx context.Context, ib *domain.IncompleteBoard) error
}

// Stores bundles every store so multi-write operations can run against
// one transaction scope.
type Stores struct {
	Users       UserStore
	Boards      BoardStore
	Sessions    SessionStore
	Completions CompletionStore
}

// TxManager runs fn atomically: every store write inside commits
// together or not at all.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
