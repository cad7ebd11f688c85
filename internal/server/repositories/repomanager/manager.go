package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/calckeeper/internal/dbx"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/calculations"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can
// use the same repositories on the pool or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Calculations(db dbx.DBTX) calculations.Repository
}
