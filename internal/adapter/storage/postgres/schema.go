package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes classified as schema-compatibility errors: the
// statement referenced a column or table the deployed schema does not have
// yet. Writes retry with a smaller optional-field set; anything else is a
// true storage error.
var recoverableSchemaCodes = map[string]struct{}{
	"42703": {}, // undefined_column
	"42P01": {}, // undefined_table
}

// IsRecoverableSchemaErr reports whether err is a schema-compatibility error
// that a reduced field set can work around.
func IsRecoverableSchemaErr(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := recoverableSchemaCodes[pgErr.Code]
	return ok
}

// configWriteAttempts is the ordered list of optional webhook-config column
// subsets tried on each write, largest first. The final empty set is the
// minimal required schema; a failure there is fatal. Configs must never fail
// to save merely because an optional column has not been migrated yet.
var configWriteAttempts = [][]string{
	{"description", "scope", "updated_at"},
	{"description", "scope"},
	{"description", "updated_at"},
	{"scope", "updated_at"},
	{"description"},
	{"scope"},
	{"updated_at"},
	{},
}
