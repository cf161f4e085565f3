package wifi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
)

func TestClassifyStorage_TagsUniqueViolations(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	wrapped := fmt.Errorf("insert chunk of 4: %w", pgErr)

	got := wifi.ClassifyStorage(wrapped)
	if !errors.Is(got, wifi.ErrIntegrity) {
		t.Errorf("expected ErrIntegrity for code 23505, got %v", got)
	}
}

func TestClassifyStorage_PassesThroughOtherErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "57014", Message: "canceling statement"}

	if got := wifi.ClassifyStorage(pgErr); errors.Is(got, wifi.ErrIntegrity) {
		t.Errorf("timeout must not classify as integrity, got %v", got)
	}

	plain := errors.New("connection reset")
	if got := wifi.ClassifyStorage(plain); got != plain {
		t.Errorf("expected plain errors unchanged, got %v", got)
	}
}

func TestIsValidation(t *testing.T) {
	ve := &wifi.ValidationError{Param: "limit", Reason: "must be >= 0"}
	if !wifi.IsValidation(fmt.Errorf("query failed: %w", ve)) {
		t.Error("expected wrapped ValidationError to classify")
	}
	if wifi.IsValidation(errors.New("boom")) {
		t.Error("plain error must not classify as validation")
	}
}
