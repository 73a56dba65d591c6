package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKeyError reports a unique violation on a constraint whose name
// contains constraintName. gorm.ErrDuplicatedKey is accepted for dialects that
// translate errors without exposing the constraint.
func IsDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyError reports a foreign key violation on a constraint whose name
// contains constraintName. gorm.ErrForeignKeyViolated carries no constraint, so
// it only matches when constraintName is empty.
func IsForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return constraintName == "" && errors.Is(err, gorm.ErrForeignKeyViolated)
}
