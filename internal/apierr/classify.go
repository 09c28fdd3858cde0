package apierr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkalns/samplestore/internal/logging"
)

// PostgreSQL SQLSTATE classes handled by the classifier.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// uniqueKeyRegex extracts the violated column list from the engine's
// constraint-detail text, e.g. `Key (lower(name::text))=(widget) already
// exists.` The lower(...) wrapper and ::text cast produced by expression
// indexes are tolerated.
var uniqueKeyRegex = regexp.MustCompile(`Key \((?:lower\()?([a-zA-Z0-9_, ]+)`)

// Classifier turns low-level storage failures into ErrorResult values.
// It is the only place that understands engine-specific error text; parse
// failures degrade to generic codes instead of producing a second error.
type Classifier struct {
	log logging.Logger
}

func NewClassifier(log logging.Logger) *Classifier {
	return &Classifier{log: log}
}

// Database maps a storage failure that carries no row-level context.
// An error that is already an *ErrorResult passes through unchanged.
func (c *Classifier) Database(ctx context.Context, err error) *ErrorResult {
	var result *ErrorResult
	if errors.As(err, &result) {
		return result
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return c.postgres(ctx, pgErr)
	}

	internal := InternalServer()
	c.log.Error(ctx, "unclassified database error", "error", err.Error(), "incident", internal.Incident())
	return internal
}

// Resource maps a read failure for one specific row: sql.ErrNoRows becomes
// not_found for the entity, everything else goes through Database.
func (c *Classifier) Resource(ctx context.Context, entity string, id int64, err error) *ErrorResult {
	if errors.Is(err, sql.ErrNoRows) {
		return IDNotFound(entity, id)
	}
	return c.Database(ctx, err)
}

func (c *Classifier) postgres(ctx context.Context, e *pgconn.PgError) *ErrorResult {
	c.log.Error(ctx, "database query failed",
		"code", e.Code,
		"message", e.Message,
		"detail", e.Detail,
		"table", e.TableName,
		"constraint", e.ConstraintName,
	)

	switch e.Code {
	case pgUniqueViolation:
		return &ErrorResult{
			Status: http.StatusConflict,
			Errors: []ErrorDetail{{
				Code:   CodeDuplicate,
				Source: ErrorSource{Pointer: uniquePointer(e)},
			}},
		}
	case pgForeignKeyViolation:
		return &ErrorResult{
			Status: http.StatusNotFound,
			Errors: []ErrorDetail{{
				Code:   CodeNotFound,
				Source: ErrorSource{Pointer: tablePointer(e.TableName)},
			}},
		}
	case pgNotNullViolation:
		return &ErrorResult{
			Status: http.StatusBadRequest,
			Errors: []ErrorDetail{{
				Code:   CodeRequired,
				Source: ErrorSource{Pointer: fieldPointer(e.TableName, e.ColumnName)},
			}},
		}
	case pgCheckViolation:
		return &ErrorResult{
			Status: http.StatusBadRequest,
			Errors: []ErrorDetail{{
				Code:   CodeInvalid,
				Source: ErrorSource{Pointer: fieldPointer(e.TableName, e.ConstraintName)},
			}},
		}
	default:
		internal := InternalServer()
		c.log.Error(ctx, "unmapped sqlstate", "code", e.Code, "incident", internal.Incident())
		return internal
	}
}

// uniquePointer names the violated field when the detail text is parsable.
// On a composite key the last column is the discriminating one, the leading
// columns being the parent scope (e.g. sample_id, language → language).
func uniquePointer(e *pgconn.PgError) string {
	if e.TableName == "" || e.Detail == "" {
		return "/data"
	}

	match := uniqueKeyRegex.FindStringSubmatch(e.Detail)
	if match == nil {
		return "/data"
	}

	columns := strings.Split(match[1], ", ")
	field := columns[len(columns)-1]

	return fmt.Sprintf("/data/%s/%s", strcase.ToLowerCamel(e.TableName), strcase.ToLowerCamel(field))
}

func tablePointer(table string) string {
	if table == "" {
		return "/data"
	}
	return "/data/" + strcase.ToLowerCamel(table)
}

func fieldPointer(table, field string) string {
	if field == "" {
		return tablePointer(table)
	}
	return tablePointer(table) + "/" + strcase.ToLowerCamel(field)
}
