package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

type BoardStore struct {
	db *gorm.DB
}

func NewBoardStore(db *gorm.DB) *BoardStore { return &BoardStore{db: db} }

func (s *BoardStore) Create(ctx context.Context, b *domain.Board) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *BoardStore) Get(ctx context.Context, id uint) (*domain.Board, error) {
	var b domain.Board
	err := s.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns boards, filtered by difficulty when d is non-empty.
func (s *BoardStore) List(ctx context.Context, d domain.Difficulty) ([]domain.Board, error) {
	q := s.db.WithContext(ctx)
	if d != "" {
		q = q.Where("difficulty = ?", d)
	}
	var out []domain.Board
	return out, q.Find(&out).Error
}

// Random picks one board uniformly, optionally within a difficulty.
// RANDOM() is understood by both sqlite and Postgres.
func (s *BoardStore) Random(ctx context.Context, d domain.Difficulty) (*domain.Board, error) {
	q := s.db.WithContext(ctx)
	if d != "" {
		q = q.Where("difficulty = ?", d)
	}
	var b domain.Board
	err := q.Order("RANDOM()").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BoardStore) Count(ctx context.Context, d domain.Difficulty) (int64, error) {
	q := s.db.WithContext(ctx).Model(&domain.Board{})
	if d != "" {
		q = q.Where("difficulty = ?", d)
	}
	var n int64
	return n, q.Count(&n).Error
}

// Exists reports whether an identical puzzle/solution pair is already
// stored. Grids compare by their serialized column form.
func (s *BoardStore) Exists(ctx context.Context, puzzle, solution domain.Grid) (bool, error) {
	pv, err := puzzle.Value()
	if err != nil {
		return false, err
	}
	sv, err := solution.Value()
	if err != nil {
		return false, err
	}
	var n int64
	err = s.db.WithContext(ctx).Model(&domain.Board{}).
		Where("puzzle = ? AND solution = ?", pv, sv).Count(&n).Error
	return n > 0, err
}

func (s *BoardStore) IncrementPlayed(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&domain.Board{}).Where("id = ?", id).
		UpdateColumn("times_played", gorm.Expr("times_played + 1")).Error
}

// RecordCompletion bumps the completion counters and tightens the
// fastest time if this run beat it.
func (s *BoardStore) RecordCompletion(ctx context.Context, id uint, seconds int) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	b.TimesCompleted++
	if b.TimesPlayed > 0 {
		b.CompletionRate = float64(b.TimesCompleted) / float64(b.TimesPlayed) * 100
	}
	if b.FastestTime == nil || seconds < *b.FastestTime {
		b.FastestTime = &seconds
	}
	return s.db.WithContext(ctx).Save(b).Error
}

func (s *BoardStore) SetDifficulty(ctx context.Context, id uint, d domain.Difficulty) error {
	res := s.db.WithContext(ctx).Model(&domain.Board{}).Where("id = ?", id).
		UpdateColumn("difficulty", d)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func (s *BoardStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Board{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}
