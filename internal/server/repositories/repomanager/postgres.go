package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/dbx"
	"github.com/mkalns/samplestore/internal/server/migrations"
	"github.com/mkalns/samplestore/internal/server/repositories/samples"
)

type PostgresRepositoryManager struct {
	classify *apierr.Classifier
}

func NewPostgresRepositoryManager(classify *apierr.Classifier) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{classify: classify}
}

func (m *PostgresRepositoryManager) Samples(db dbx.DBTX) samples.Repository {
	return samples.NewPostgresRepository(db, m.classify)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
