// Package memory keeps users and calculations in process memory. It backs
// the "memory" database setting for local runs and the HTTP-level tests.
package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/calckeeper/internal/dbx"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/calculations"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/users"
)

// RepositoryManager hands out the same two repositories whatever DBTX is
// passed, and doubles as a dbx.Transactor that serializes transactions.
type RepositoryManager struct {
	txMu         sync.Mutex
	users        *UsersRepository
	calculations *CalculationsRepository
}

func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{
		users:        NewUsersRepository(),
		calculations: NewCalculationsRepository(),
	}
}

func (m *RepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *RepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *RepositoryManager) Calculations(dbx.DBTX) calculations.Repository {
	return m.calculations
}

// WithTx runs fn while holding the manager's transaction lock. There is
// no rollback: repositories are only written after every check passed.
func (m *RepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}
