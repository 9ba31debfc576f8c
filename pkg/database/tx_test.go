package database

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestErrorClassifiers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	if !IsUniqueViolation(wrap("23505")) {
		t.Fatal("23505 must classify as unique violation")
	}
	if !IsLockNotAvailable(wrap("55P03")) {
		t.Fatal("55P03 must classify as lock not available")
	}
	if !IsSerializationFailure(wrap("40001")) {
		t.Fatal("40001 must classify as serialization failure")
	}

	other := wrap("23503")
	if IsUniqueViolation(other) || IsLockNotAvailable(other) || IsSerializationFailure(other) {
		t.Fatal("foreign key violation must not match any classifier")
	}
	if IsUniqueViolation(fmt.Errorf("plain error")) {
		t.Fatal("non-pg errors must not classify")
	}
}
