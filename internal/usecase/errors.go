package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrLookupFailed wraps any failure reading from the data store or identity provider.
var ErrLookupFailed = errors.New("lookup failed")

// ErrPlansPartiallyReplaced matches a WriteFailedError raised after the old insurance plan
// links were deleted but the new ones could not be inserted. The doctor has no plans left.
var ErrPlansPartiallyReplaced = errors.New("insurance plans partially replaced")

// WriteKind names the single write that failed
type WriteKind string

const (
	WriteDoctorApproval       WriteKind = "doctor_approval"
	WriteClaimApproval        WriteKind = "claim_approval"
	WriteClaimVisibility      WriteKind = "claim_visibility"
	WriteInsurancePlansDelete WriteKind = "insurance_plans_delete"
	WriteInsurancePlansInsert WriteKind = "insurance_plans_insert"
	WriteDoctorProfile        WriteKind = "doctor_profile"
	WriteLocation             WriteKind = "location"
	WriteClaimInstitution     WriteKind = "claim_institution"
)

// WriteFailedError reports a failed write. Nothing is retried or rolled back.
type WriteFailedError struct {
	Kind WriteKind
	ID   uuid.UUID
	Err  error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("%s write failed for %s: %v", e.Kind, e.ID, e.Err)
}

func (e *WriteFailedError) Unwrap() error {
	return e.Err
}

func (e *WriteFailedError) Is(target error) bool {
	return target == ErrPlansPartiallyReplaced && e.Kind == WriteInsurancePlansInsert
}

func lookupFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrLookupFailed, err)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
