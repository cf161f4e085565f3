package wifi

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError reports caller input that fails a precondition check.
// It rejects the single request and is never retried automatically.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// IsValidation reports whether err originated from bad caller input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrIntegrity marks a unique/constraint violation from the store. During
// ingestion it is fatal to the run: it means rows from an earlier partial
// attempt may already be present.
var ErrIntegrity = errors.New("storage integrity violation")

// Postgres error code for unique_violation.
const uniqueViolation = "23505"

// ClassifyStorage tags unique-constraint violations with ErrIntegrity so
// callers can tell them apart from transient storage failures.
func ClassifyStorage(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	return err
}
