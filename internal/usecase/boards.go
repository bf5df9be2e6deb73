package usecase

import (
	"context"
	"log/slog"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
)

// BoardService serves the board catalogue: lists, lookups, random
// selection for new games, and counts. Boards are supplied by the seed
// tool; this service never generates or solves puzzles.
type BoardService struct {
	boards ports.BoardStore
	log    *slog.Logger
}

func NewBoardService(boards ports.BoardStore, log *slog.Logger) *BoardService {
	return &BoardService{boards: boards, log: log}
}

// NewGame picks a random playable board. An empty difficulty means any.
func (b *BoardService) NewGame(ctx context.Context, difficulty string) (*domain.Board, error) {
	return b.boards.Random(ctx, domain.ParseDifficulty(difficulty))
}

func (b *BoardService) Get(ctx context.Context, id uint) (*domain.Board, error) {
	return b.boards.Get(ctx, id)
}

func (b *BoardService) List(ctx context.Context, difficulty string) ([]domain.Board, error) {
	return b.boards.List(ctx, domain.ParseDifficulty(difficulty))
}

func (b *BoardService) Count(ctx context.Context, difficulty string) (int64, error) {
	return b.boards.Count(ctx, domain.ParseDifficulty(difficulty))
}

// Regrade assigns a new difficulty label to a board. This is the only
// board field a client may change; play stats move solely through the
// session lifecycle.
func (b *BoardService) Regrade(ctx context.Context, id uint, difficulty string) (*domain.Board, error) {
	d := domain.ParseDifficulty(difficulty)
	if d == "" {
		d = domain.Medium
	}
	if err := b.boards.SetDifficulty(ctx, id, d); err != nil {
		return nil, err
	}
	return b.boards.Get(ctx, id)
}

func (b *BoardService) Delete(ctx context.Context, id uint) error {
	return b.boards.Delete(ctx, id)
}
