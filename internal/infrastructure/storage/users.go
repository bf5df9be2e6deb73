package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *UserStore) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	return mapUser(&u, s.db.WithContext(ctx).First(&u, id).Error)
}

// GetByUsername matches case-insensitively, as the original service
// resolves usernames.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).First(&u).Error
	return mapUser(&u, err)
}

// GetByLogin resolves either a username or an email address.
func (s *UserStore) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", login, login).
		First(&u).Error
	return mapUser(&u, err)
}

func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	return out, s.db.WithContext(ctx).Find(&out).Error
}

func (s *UserStore) Save(ctx context.Context, u *domain.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *UserStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func mapUser(u *domain.User, err error) (*domain.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
