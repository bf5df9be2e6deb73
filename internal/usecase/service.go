// Package usecase orchestrates the game core against its collaborator
// ports: stores, clock, and rule validator. Each session operation runs
// its read-validate-mutate-persist cycle under a per-user lock and a
// single storage transaction, so a rejected operation leaves persisted
// state untouched.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/progress"
)

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// userLocks serializes session operations per user. Sessions of
// different users proceed concurrently.
type userLocks struct {
	mu sync.Mutex
	m  map[uint]*sync.Mutex
}

func (l *userLocks) forUser(id uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[uint]*sync.Mutex)
	}
	if _, ok := l.m[id]; !ok {
		l.m[id] = &sync.Mutex{}
	}
	return l.m[id]
}

// GameService owns the session lifecycle: start, move, hint, pause,
// abandon, and completion transfer.
type GameService struct {
	tx      ports.TxManager
	stores  ports.Stores
	tracker *progress.Tracker
	clock   ports.Clock
	locks   userLocks
	log     *slog.Logger
}

func NewGameService(tx ports.TxManager, stores ports.Stores, tracker *progress.Tracker, clock ports.Clock, log *slog.Logger) *GameService {
	return &GameService{tx: tx, stores: stores, tracker: tracker, clock: clock, log: log}
}

// MoveResult reports the session after a move, and the completion
// record when the move solved the board.
type MoveResult struct {
	Session   *domain.GameSession
	Completed bool
	Record    *domain.CompletedBoard
}

// StartSession begins a new game on the given board, replacing any
// active session the user has. The replaced session is archived as an
// incomplete board before deletion.
func (g *GameService) StartSession(ctx context.Context, userID, boardID uint) (*domain.GameSession, error) {
	mu := g.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	now := g.clock.Now()
	var created *domain.GameSession
	err := g.tx.WithinTx(ctx, func(ctx context.Context, s ports.Stores) error {
		user, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		board, err := s.Boards.Get(ctx, boardID)
		if err != nil {
			return err
		}

		if prev, err := s.Sessions.GetByUserID(ctx, userID); err == nil {
			if err := s.Completions.CreateIncomplete(ctx, &domain.IncompleteBoard{
				UserID:               prev.UserID,
				BoardID:              prev.BoardID,
				CompletionPercentage: prev.CompletionPercentage,
				Score:                prev.Score,
			}); err != nil {
				return err
			}
			user.IncompleteBoardsCount++
			if err := s.Sessions.Delete(ctx, prev.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, domain.ErrSessionNotFound) {
			return err
		}

		bumpPlayed(user, board.Difficulty)
		if err := s.Users.Save(ctx, user); err != nil {
			return err
		}
		if err := s.Boards.IncrementPlayed(ctx, boardID); err != nil {
			return err
		}

		created = &domain.GameSession{
			UserID:       userID,
			BoardID:      boardID,
			Progress:     board.Puzzle,
			StartedAt:    now,
			LastActiveAt: now,
		}
		return s.Sessions.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	g.log.Info("session started", "user", userID, "board", boardID)
	return created, nil
}

// Move applies a single-cell placement to the user's active session.
// When the move fills the last cell correctly the session is finalized
// in the same transaction and the completion record returned.
func (g *GameService) Move(ctx context.Context, userID uint, row, col int, value uint8) (*MoveResult, error) {
	mu := g.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	now := g.clock.Now()
	var res MoveResult
	err := g.tx.WithinTx(ctx, func(ctx context.Context, s ports.Stores) error {
		session, board, err := loadPlayState(ctx, s, userID)
		if err != nil {
			return err
		}
		if err := g.tracker.ApplyMove(session, board, row, col, value, now); err != nil {
			return err
		}
		if err := s.Sessions.Save(ctx, session); err != nil {
			return err
		}
		res.Session = session
		if progress.IsSolved(session, board) {
			rec, err := g.finalize(ctx, s, session, board, now)
			if err != nil {
				return err
			}
			res.Completed = true
			res.Record = rec
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Completed {
		g.log.Info("board solved", "user", userID, "score", res.Record.Score)
	}
	return &res, nil
}

// Hint reveals the first empty cell's solution value without writing
// it to the board.
func (g *GameService) Hint(ctx context.Context, userID uint) (domain.Hint, *domain.GameSession, error) {
	mu := g.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var hint domain.Hint
	var out *domain.GameSession
	err := g.tx.WithinTx(ctx, func(ctx context.Context, s ports.Stores) error {
		session, board, err := loadPlayState(ctx, s, userID)
		if err != nil {
			return err
		}
		h, err := g.tracker.RequestHint(session, board)
		if err != nil {
			return err
		}
		if err := s.Sessions.Save(ctx, session); err != nil {
			return err
		}
		hint, out = h, session
		return nil
	})
	if err != nil {
		return domain.Hint{}, nil, err
	}
	return hint, out, nil
}

// SetPaused pauses or resumes the clock on the active session.
func (g *GameService) SetPaused(ctx context.Context, userID uint, paused bool) (*domain.GameSession, error) {
	mu := g.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	now := g.clock.Now()
	var out *domain.GameSession
	err := g.tx.WithinTx(ctx, func(ctx context.Context, s ports.Stores) error {
		session, err := s.Sessions.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		g.tracker.SetPaused(session, paused, now)
		out = session
		return s.Sessions.Save(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveSession returns the user's current session, if any.
func (g *GameService) ActiveSession(ctx context.Context, userID uint) (*domain.GameSession, error) {
	return g.stores.Sessions.GetByUserID(ctx, userID)
}

// ListSessions returns every active session, most recent first.
func (g *GameService) ListSessions(ctx context.Context) ([]domain.GameSession, error) {
	return g.stores.Sessions.List(ctx)
}

// Abandon deletes the user's active session without archiving it.
func (g *GameService) Abandon(ctx context.Context, userID uint) error {
	mu := g.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	session, err := g.stores.Sessions.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return g.stores.Sessions.Delete(ctx, session.ID)
}

// Complete finalizes the user's active session on request, regardless
// of board state, transferring its snapshot to the completion record.
func (g *GameService) Complete(ctx context.Context, userID uint) (*domain.CompletedBoard, error) {
	mu := g.locks.forUser(userID)
	mu.Lock()
	defer mu.Unlock()

	now := g.clock.Now()
	var rec *domain.CompletedBoard
	err := g.tx.WithinTx(ctx, func(ctx context.Context, s ports.Stores) error {
		session, board, err := loadPlayState(ctx, s, userID)
		if err != nil {
			return err
		}
		rec, err = g.finalize(ctx, s, session, board, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// finalize transfers the session into its permanent completion record,
// updates board and user aggregates, and removes the session row. The
// session is terminal after this; restarting later creates a new one.
func (g *GameService) finalize(ctx context.Context, s ports.Stores, session *domain.GameSession, board *domain.Board, now time.Time) (*domain.CompletedBoard, error) {
	rec := &domain.CompletedBoard{
		UserID:         session.UserID,
		BoardID:        session.BoardID,
		Score:          session.Score,
		TotalTimeSpent: session.ElapsedSeconds,
		HintsUsed:      session.HintsUsed,
		MistakesMade:   session.MistakesMade,
		CompletedAt:    now,
	}
	if err := s.Completions.Create(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.Boards.RecordCompletion(ctx, board.ID, session.ElapsedSeconds); err != nil {
		return nil, err
	}

	user, err := s.Users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	user.CompletedBoardsCount++
	user.StreakCount++
	bumpCompleted(user, board.Difficulty, session.ElapsedSeconds)
	if rec.Score > user.HighScore {
		user.HighScore = rec.Score
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, session.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

func loadPlayState(ctx context.Context, s ports.Stores, userID uint) (*domain.GameSession, *domain.Board, error) {
	session, err := s.Sessions.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	board, err := s.Boards.Get(ctx, session.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return session, board, nil
}

func bumpPlayed(u *domain.User, d domain.Difficulty) {
	switch d {
	case domain.Easy:
		u.PlayedEasy++
	case domain.Hard:
		u.PlayedHard++
	case domain.Expert:
		u.PlayedExpert++
	default:
		u.PlayedMedium++
	}
}

func bumpCompleted(u *domain.User, d domain.Difficulty, seconds int) {
	better := func(cur *int) *int {
		if cur == nil || seconds < *cur {
			return &seconds
		}
		return cur
	}
	switch d {
	case domain.Easy:
		u.CompletedEasy++
		u.FastestEasy = better(u.FastestEasy)
	case domain.Hard:
		u.CompletedHard++
		u.FastestHard = better(u.FastestHard)
	case domain.Expert:
		u.CompletedExpert++
		u.FastestExpert = better(u.FastestExpert)
	default:
		u.CompletedMedium++
		u.FastestMedium = better(u.FastestMedium)
	}
}
