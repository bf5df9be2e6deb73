// Package storage implements the persistence ports on gorm, with
// sqlite (pure Go) for development and tests and Postgres for
// production deployments.
package storage

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
)

// Open connects to the configured database.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), cfg)
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Board{},
		&domain.GameSession{},
		&domain.CompletedBoard{},
		&domain.IncompleteBoard{},
	)
}

// NewStores builds the full store bundle over one gorm handle, which
// may be a transaction.
func NewStores(db *gorm.DB) ports.Stores {
	return ports.Stores{
		Users:       &UserStore{db: db},
		Boards:      &BoardStore{db: db},
		Sessions:    &SessionStore{db: db},
		Completions: &CompletionStore{db: db},
	}
}

// TxManager runs store operations inside a single gorm transaction.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager { return &TxManager{db: db} }

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, s ports.Stores) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewStores(tx))
	})
}
