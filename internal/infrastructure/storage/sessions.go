package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore { return &SessionStore{db: db} }

func (s *SessionStore) Create(ctx context.Context, gs *domain.GameSession) error {
	return s.db.WithContext(ctx).Create(gs).Error
}

func (s *SessionStore) GetByUserID(ctx context.Context, userID uint) (*domain.GameSession, error) {
	var gs domain.GameSession
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&gs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gs, nil
}

// Save writes the full session row in one statement; derived fields
// always land together with the cell that changed.
func (s *SessionStore) Save(ctx context.Context, gs *domain.GameSession) error {
	return s.db.WithContext(ctx).Save(gs).Error
}

func (s *SessionStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.GameSession{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *SessionStore) List(ctx context.Context) ([]domain.GameSession, error) {
	var out []domain.GameSession
	return out, s.db.WithContext(ctx).Order("started_at DESC").Find(&out).Error
}
