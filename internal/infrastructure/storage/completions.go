package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

type CompletionStore struct {
	db *gorm.DB
}

func NewCompletionStore(db *gorm.DB) *CompletionStore { return &CompletionStore{db: db} }

func (s *CompletionStore) Create(ctx context.Context, c *domain.CompletedBoard) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *CompletionStore) ListByUser(ctx context.Context, userID uint) ([]domain.CompletedBoard, error) {
	var out []domain.CompletedBoard
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("completed_at DESC").Find(&out).Error
	return out, err
}

func (s *CompletionStore) CreateIncomplete(ctx context.Context, ib *domain.IncompleteBoard) error {
	return s.db.WithContext(ctx).Create(ib).Error
}
