package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !isUniqueViolation(unique) {
		t.Error("23505 must be detected as a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert user: %w", unique)) {
		t.Error("wrapped 23505 must be detected as a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign-key violation must not count as unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Error("plain error must not count as unique violation")
	}
	if isUniqueViolation(nil) {
		t.Error("nil error must not count as unique violation")
	}
}

func TestRowsAffectedErr(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want error
	}{
		{"nothing touched", "UPDATE 0", pgx.ErrNoRows},
		{"one row", "UPDATE 1", nil},
		{"several rows", "DELETE 3", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rowsAffectedErr(pgconn.NewCommandTag(tt.tag))
			if !errors.Is(err, tt.want) && err != tt.want {
				t.Errorf("rowsAffectedErr(%q) = %v, want %v", tt.tag, err, tt.want)
			}
		})
	}
}
