// Package samples provides the PostgreSQL-backed repository for the sample
// entity and its per-language translations.
package samples

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/dbx"
	"github.com/mkalns/samplestore/internal/request"
	"github.com/mkalns/samplestore/internal/server/models"
)

const entity = "sample"

// PostgresRepository implements Repository over a dbx.DBTX, so the same code
// runs against the pool or inside a transaction.
type PostgresRepository struct {
	db       dbx.DBTX
	classify *apierr.Classifier
}

func NewPostgresRepository(db dbx.DBTX, classify *apierr.Classifier) *PostgresRepository {
	return &PostgresRepository{db: db, classify: classify}
}

// Seek runs the keyset query: rows strictly after the (createdAt, id) cursor
// in (created_at DESC, id DESC) order, up to size+1 of them. The lateral join
// picks the best display translation, preferring an exact language match and
// falling back to the lowest ordinal; rows without translations keep their
// primary name.
func (r *PostgresRepository) Seek(ctx context.Context, filter SeekFilter, req request.SeekRequest) ([]*models.SampleListItem, error) {
	query := `
		SELECT s.id, COALESCE(t.name, s.name), COALESCE(t.description, s.description), s.amount, s.created_at
		FROM sample s
		LEFT JOIN LATERAL (
			SELECT name, description
			FROM sample_translation
			WHERE sample_id = s.id
			ORDER BY (language = $1)::int DESC, ordinal
			LIMIT 1
		) t ON true
		WHERE s.deleted_at IS NULL
			AND (s.name ILIKE concat('%', $2::text, '%') OR t.name ILIKE concat('%', $2::text, '%'))
			AND ($4::timestamptz IS NULL OR $5::bigint IS NULL OR (s.created_at, s.id) < ($4, $5))
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, filter.Language, filter.Query, req.Limit(), req.CreatedAt, req.ID)
	if err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	defer rows.Close()

	var result []*models.SampleListItem
	for rows.Next() {
		item := &models.SampleListItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Amount, &item.CreatedAt); err != nil {
			return nil, r.classify.Database(ctx, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	return result, nil
}

// List runs the offset query ordered by created_at DESC.
func (r *PostgresRepository) List(ctx context.Context, query string, req request.PageRequest) ([]*models.SampleListItem, error) {
	sql := `
		SELECT id, name, description, amount, created_at
		FROM sample
		WHERE deleted_at IS NULL AND name ILIKE concat('%', $1::text, '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, sql, query, req.Limit(), req.Offset())
	if err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	defer rows.Close()

	var result []*models.SampleListItem
	for rows.Next() {
		item := &models.SampleListItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Amount, &item.CreatedAt); err != nil {
			return nil, r.classify.Database(ctx, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	return result, nil
}

// Count returns the total live-row count for the same filter List uses.
func (r *PostgresRepository) Count(ctx context.Context, query string) (int64, error) {
	sql := `
		SELECT count(*)
		FROM sample
		WHERE deleted_at IS NULL AND name ILIKE concat('%', $1::text, '%')`

	var count int64
	if err := r.db.QueryRowContext(ctx, sql, query).Scan(&count); err != nil {
		return 0, r.classify.Database(ctx, err)
	}
	return count, nil
}

// Get fetches one live sample. When translate is true the name and
// description come from the best-matching translation for language; when
// false the primary fields are returned untouched (the lateral join is
// switched off by its ON clause).
func (r *PostgresRepository) Get(ctx context.Context, id int64, translate bool, language string) (*models.Sample, error) {
	query := `
		SELECT
			s.id,
			COALESCE(t.name, s.name),
			COALESCE(t.description, s.description),
			s.amount,
			s.version,
			s.created_at,
			s.created_by,
			s.last_modified_at,
			s.last_modified_by
		FROM sample s
		LEFT JOIN LATERAL (
			SELECT name, description
			FROM sample_translation
			WHERE sample_id = s.id
			ORDER BY (language = $3)::int DESC, ordinal
			LIMIT 1
		) t ON $2
		WHERE s.id = $1 AND s.deleted_at IS NULL`

	sample := &models.Sample{}
	err := r.db.QueryRowContext(ctx, query, id, translate, language).Scan(
		&sample.ID,
		&sample.Name,
		&sample.Description,
		&sample.Amount,
		&sample.Version,
		&sample.CreatedAt,
		&sample.CreatedBy,
		&sample.LastModifiedAt,
		&sample.LastModifiedBy,
	)
	if err != nil {
		return nil, r.classify.Resource(ctx, entity, id, err)
	}
	return sample, nil
}

// Create inserts a sample; the store assigns id, the initial version and the
// audit timestamps.
func (r *PostgresRepository) Create(ctx context.Context, req *models.SampleRequest, actor string) (*models.Sample, error) {
	query := `
		INSERT INTO sample (name, description, amount, created_by, last_modified_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, amount, version, created_at, created_by, last_modified_at, last_modified_by`

	sample := &models.Sample{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Description, req.Amount, actor, actor).Scan(
		&sample.ID,
		&sample.Name,
		&sample.Description,
		&sample.Amount,
		&sample.Version,
		&sample.CreatedAt,
		&sample.CreatedBy,
		&sample.LastModifiedAt,
		&sample.LastModifiedBy,
	)
	if err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	return sample, nil
}

// Update rewrites the sample's content if and only if the stored version
// matches the submitted one; the store bumps version by one and refreshes
// the modification audit fields. A zero-row outcome cannot distinguish a
// missing id from a stale version, so the id is probed before deciding.
func (r *PostgresRepository) Update(ctx context.Context, id int64, req *models.SampleRequest, version int16, actor string) (*models.Sample, error) {
	query := `
		UPDATE sample
		SET
			name = $3,
			description = $4,
			amount = $5,
			version = version + 1,
			last_modified_at = now(),
			last_modified_by = $6
		WHERE id = $1 AND version = $2 AND deleted_at IS NULL
		RETURNING id, name, description, amount, version, created_at, created_by, last_modified_at, last_modified_by`

	sample := &models.Sample{}
	err := r.db.QueryRowContext(ctx, query, id, version, req.Name, req.Description, req.Amount, actor).Scan(
		&sample.ID,
		&sample.Name,
		&sample.Description,
		&sample.Amount,
		&sample.Version,
		&sample.CreatedAt,
		&sample.CreatedBy,
		&sample.LastModifiedAt,
		&sample.LastModifiedBy,
	)
	if err != nil {
		return nil, r.conditionFailed(ctx, id, version, err)
	}
	return sample, nil
}

// Delete soft-deletes the sample under the same optimistic-version condition
// as Update, bumping version and stamping the deletion audit fields.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, version int16, actor string) error {
	query := `
		UPDATE sample
		SET version = version + 1, deleted_at = now(), deleted_by = $3
		WHERE id = $1 AND version = $2 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, version, actor)
	if err != nil {
		return r.classify.Database(ctx, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.classify.Database(ctx, err)
	}
	if affected == 0 {
		return r.zeroRowsError(ctx, id, version)
	}
	return nil
}

// Translations lists the stored translation set in display order.
func (r *PostgresRepository) Translations(ctx context.Context, id int64) ([]models.SampleTranslation, error) {
	query := `
		SELECT name, description, language, ordinal
		FROM sample_translation
		WHERE sample_id = $1
		ORDER BY ordinal`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	defer rows.Close()

	var result []models.SampleTranslation
	for rows.Next() {
		var t models.SampleTranslation
		if err := rows.Scan(&t.Name, &t.Description, &t.Language, &t.Ordinal); err != nil {
			return nil, r.classify.Database(ctx, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	return result, nil
}

// InsertTranslations bulk-inserts a fresh translation set for a new sample.
func (r *PostgresRepository) InsertTranslations(ctx context.Context, id int64, translations []models.SampleTranslation) ([]models.SampleTranslation, error) {
	if len(translations) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		INSERT INTO sample_translation (sample_id, name, description, language, ordinal)
		VALUES %s
		RETURNING name, description, language, ordinal`,
		valuesClause(len(translations), 5, 0))

	return r.queryTranslations(ctx, query, translationArgs(id, translations)...)
}

// ReplaceTranslations reconciles storage to exactly match the desired set:
// stored languages absent from it are deleted, then every desired
// translation is upserted on (sample_id, language). Callers run this on a
// transactional handle together with the parent update.
func (r *PostgresRepository) ReplaceTranslations(ctx context.Context, id int64, translations []models.SampleTranslation) ([]models.SampleTranslation, error) {
	languages := make([]string, len(translations))
	for i, t := range translations {
		languages[i] = t.Language
	}

	del := `DELETE FROM sample_translation WHERE sample_id = $1 AND language <> ALL($2)`
	if _, err := r.db.ExecContext(ctx, del, id, languages); err != nil {
		return nil, r.classify.Database(ctx, err)
	}

	if len(translations) == 0 {
		return nil, nil
	}

	upsert := fmt.Sprintf(`
		INSERT INTO sample_translation (sample_id, name, description, language, ordinal)
		VALUES %s
		ON CONFLICT (sample_id, language)
		DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			ordinal = excluded.ordinal
		RETURNING name, description, language, ordinal`,
		valuesClause(len(translations), 5, 0))

	return r.queryTranslations(ctx, upsert, translationArgs(id, translations)...)
}

func (r *PostgresRepository) queryTranslations(ctx context.Context, query string, args ...any) ([]models.SampleTranslation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	defer rows.Close()

	var result []models.SampleTranslation
	for rows.Next() {
		var t models.SampleTranslation
		if err := rows.Scan(&t.Name, &t.Description, &t.Language, &t.Ordinal); err != nil {
			return nil, r.classify.Database(ctx, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify.Database(ctx, err)
	}
	return result, nil
}

// conditionFailed resolves the outcome of a version-conditioned statement
// that matched nothing.
func (r *PostgresRepository) conditionFailed(ctx context.Context, id int64, version int16, err error) error {
	if !errors.Is(err, sql.ErrNoRows) {
		return r.classify.Database(ctx, err)
	}
	return r.zeroRowsError(ctx, id, version)
}

// zeroRowsError probes whether the id exists at all: a live row means the
// condition failed on version, so the conflict carries the version the
// client submitted.
func (r *PostgresRepository) zeroRowsError(ctx context.Context, id int64, version int16) error {
	probe := `SELECT exists(SELECT 1 FROM sample WHERE id = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, probe, id).Scan(&exists); err != nil {
		return r.classify.Database(ctx, err)
	}

	if !exists {
		return apierr.IDNotFound(entity, id)
	}
	return apierr.VersionConflict(entity, id, version)
}

// valuesClause builds the "($1, $2, ...), ($6, ...)" placeholder list for a
// multi-row insert of rows×cols parameters, starting after offset.
func valuesClause(rowCount, cols, offset int) string {
	groups := make([]string, rowCount)
	for i := 0; i < rowCount; i++ {
		params := make([]string, cols)
		for j := 0; j < cols; j++ {
			params[j] = fmt.Sprintf("$%d", offset+i*cols+j+1)
		}
		groups[i] = "(" + strings.Join(params, ", ") + ")"
	}
	return strings.Join(groups, ", ")
}

func translationArgs(id int64, translations []models.SampleTranslation) []any {
	args := make([]any, 0, len(translations)*5)
	for _, t := range translations {
		args = append(args, id, t.Name, t.Description, t.Language, t.Ordinal)
	}
	return args
}
