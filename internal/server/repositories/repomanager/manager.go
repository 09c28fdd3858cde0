// Package repomanager hands out repositories bound to a DBTX, so a service
// can run the same repository code on the pool or inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkalns/samplestore/internal/dbx"
	"github.com/mkalns/samplestore/internal/server/repositories/samples"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Samples(db dbx.DBTX) samples.Repository
}
