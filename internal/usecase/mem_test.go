package usecase

// In-memory store fakes. Value-typed maps give copy-on-read semantics,
// matching how the gorm stores hand back fresh rows per query.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type memDB struct {
	mu          sync.Mutex
	users       map[uint]domain.User
	boards      map[uint]domain.Board
	sessions    map[uint]domain.GameSession
	completed   []domain.CompletedBoard
	incompletes []domain.IncompleteBoard
	nextID      uint
}

func newMemDB() *memDB {
	return &memDB{
		users:    make(map[uint]domain.User),
		boards:   make(map[uint]domain.Board),
		sessions: make(map[uint]domain.GameSession),
	}
}

func (db *memDB) id() uint { db.nextID++; return db.nextID }

func (db *memDB) stores() ports.Stores {
	return ports.Stores{
		Users:       &memUsers{db},
		Boards:      &memBoards{db},
		Sessions:    &memSessions{db},
		Completions: &memCompletions{db},
	}
}

// memTx is not transactional; these tests exercise service logic, not
// rollback. Atomicity of the gorm transaction is covered in storage.
type memTx struct{ db *memDB }

func (t *memTx) WithinTx(ctx context.Context, fn func(ctx context.Context, s ports.Stores) error) error {
	return fn(ctx, t.db.stores())
}

type memUsers struct{ db *memDB }

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	u.ID = m.db.id()
	m.db.users[u.ID] = *u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uint) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	u, ok := m.db.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, u := range m.db.users {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, u := range m.db.users {
		if strings.EqualFold(u.Username, login) || (u.Email != nil && strings.EqualFold(*u.Email, login)) {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) List(_ context.Context) ([]domain.User, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := make([]domain.User, 0, len(m.db.users))
	for _, u := range m.db.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Save(_ context.Context, u *domain.User) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.users[u.ID] = *u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id uint) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.db.users, id)
	return nil
}

type memBoards struct{ db *memDB }

func (m *memBoards) Create(_ context.Context, b *domain.Board) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	b.ID = m.db.id()
	m.db.boards[b.ID] = *b
	return nil
}

func (m *memBoards) Get(_ context.Context, id uint) (*domain.Board, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	b, ok := m.db.boards[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	return &b, nil
}

func (m *memBoards) List(_ context.Context, d domain.Difficulty) ([]domain.Board, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	var out []domain.Board
	for _, b := range m.db.boards {
		if d == "" || b.Difficulty == d {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBoards) Random(ctx context.Context, d domain.Difficulty) (*domain.Board, error) {
	boards, err := m.List(ctx, d)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, domain.ErrBoardNotFound
	}
	return &boards[0], nil
}

func (m *memBoards) Count(ctx context.Context, d domain.Difficulty) (int64, error) {
	boards, err := m.List(ctx, d)
	if err != nil {
		return 0, err
	}
	return int64(len(boards)), nil
}

func (m *memBoards) Exists(ctx context.Context, puzzle, solution domain.Grid) (bool, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, b := range m.db.boards {
		if b.Puzzle == puzzle && b.Solution == solution {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBoards) IncrementPlayed(_ context.Context, id uint) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	b, ok := m.db.boards[id]
	if !ok {
		return domain.ErrBoardNotFound
	}
	b.TimesPlayed++
	m.db.boards[id] = b
	return nil
}

func (m *memBoards) RecordCompletion(_ context.Context, id uint, seconds int) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	b, ok := m.db.boards[id]
	if !ok {
		return domain.ErrBoardNotFound
	}
	b.TimesCompleted++
	if b.FastestTime == nil || seconds < *b.FastestTime {
		b.FastestTime = &seconds
	}
	m.db.boards[id] = b
	return nil
}

func (m *memBoards) SetDifficulty(_ context.Context, id uint, d domain.Difficulty) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	b, ok := m.db.boards[id]
	if !ok {
		return domain.ErrBoardNotFound
	}
	b.Difficulty = d
	m.db.boards[id] = b
	return nil
}

func (m *memBoards) Delete(_ context.Context, id uint) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.boards[id]; !ok {
		return domain.ErrBoardNotFound
	}
	delete(m.db.boards, id)
	return nil
}

type memSessions struct{ db *memDB }

func (m *memSessions) Create(_ context.Context, s *domain.GameSession) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	s.ID = m.db.id()
	m.db.sessions[s.ID] = *s
	return nil
}

func (m *memSessions) GetByUserID(_ context.Context, userID uint) (*domain.GameSession, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	for _, s := range m.db.sessions {
		if s.UserID == userID {
			s := s
			return &s, nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

func (m *memSessions) Save(_ context.Context, s *domain.GameSession) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	m.db.sessions[s.ID] = *s
	return nil
}

func (m *memSessions) Delete(_ context.Context, id uint) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	if _, ok := m.db.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.db.sessions, id)
	return nil
}

func (m *memSessions) List(_ context.Context) ([]domain.GameSession, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	out := make([]domain.GameSession, 0, len(m.db.sessions))
	for _, s := range m.db.sessions {
		out = append(out, s)
	}
	return out, nil
}

type memCompletions struct{ db *memDB }

func (m *memCompletions) Create(_ context.Context, c *domain.CompletedBoard) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	c.ID = m.db.id()
	m.db.completed = append(m.db.completed, *c)
	return nil
}

func (m *memCompletions) ListByUser(_ context.Context, userID uint) ([]domain.CompletedBoard, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	var out []domain.CompletedBoard
	for _, c := range m.db.completed {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCompletions) CreateIncomplete(_ context.Context, ib *domain.IncompleteBoard) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()
	ib.ID = m.db.id()
	m.db.incompletes = append(m.db.incompletes, *ib)
	return nil
}
