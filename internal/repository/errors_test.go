package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsForeignKeyError(t *testing.T) {
	doctorFK := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_doctor"})
	uniqueEmail := &pgconn.PgError{Code: "23505", ConstraintName: "idx_doctors_email"}

	cases := []struct {
		name       string
		err        error
		constraint string
		expected   bool
	}{
		{"postgres matching constraint", doctorFK, "doctor", true},
		{"postgres other constraint", doctorFK, "patient", false},
		{"postgres any constraint", doctorFK, "", true},
		{"postgres unique violation", uniqueEmail, "", false},
		{"translated without name", gorm.ErrForeignKeyViolated, "", true},
		{"translated with name", gorm.ErrForeignKeyViolated, "patient", false},
		{"unrelated", gorm.ErrRecordNotFound, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsForeignKeyError(c.err, c.constraint); got != c.expected {
				t.Errorf("IsForeignKeyError(%v, %q) = %v, expected %v", c.err, c.constraint, got, c.expected)
			}
		})
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	uniqueEmail := &pgconn.PgError{Code: "23505", ConstraintName: "idx_doctors_email"}

	if !IsDuplicateKeyError(uniqueEmail, "email") {
		t.Error("expected unique violation on email")
	}
	if IsDuplicateKeyError(uniqueEmail, "name") {
		t.Error("expected no match on another constraint")
	}
	if !IsDuplicateKeyError(gorm.ErrDuplicatedKey, "email") {
		t.Error("expected translated duplicate key to match")
	}
}
