package usecase

import (
	"errors"
	"strings"

	"patients-care-api/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrBadObjectStructure    = apperror.BadRequest(apperror.KeyBadObjectStructure)
	ErrEmailAlreadyExists    = apperror.BadRequest(apperror.KeyEmailExist)
	ErrInvalidCredentials    = apperror.Unauthenticated(apperror.KeyInvalidCredentials)
	ErrMissingRefreshToken   = apperror.BadRequest(apperror.KeyInvalidAuthorization)
	ErrRefreshTokenExpired   = apperror.NotAcceptable(apperror.KeyRefreshTokenExpired)
	ErrUserNotFound          = apperror.NotFound(apperror.KeyUserNotFound)
	ErrPasswordsMustMatch    = apperror.BadRequest(apperror.KeyPasswordsMustMatch)
	ErrNoPhoto               = apperror.BadRequest(apperror.KeyNoPhoto)
	ErrNoActionAllowed       = apperror.Forbidden(apperror.KeyNoActionAllowed)
	ErrDoctorNotFound        = apperror.NotFound(apperror.KeyDoctorNotFound)
	ErrPatientNotFound       = apperror.NotFound(apperror.KeyPatientNotFound)
	ErrClinicNotFound        = apperror.NotFound(apperror.KeyClinicNotFound)
	ErrAffiliationNotFound   = apperror.NotFound(apperror.KeyAffiliationNotFound)
	ErrAffiliationExists     = apperror.BadRequest(apperror.KeyAffiliationExists)
	ErrSpecializationMissing = apperror.NotFound(apperror.KeySpecializationNotFound)
	ErrSpecializationExists  = apperror.BadRequest(apperror.KeySpecializationExist)
	ErrDoctorSpecNotFound    = apperror.NotFound(apperror.KeySpecializationsNotFound)
	ErrDoctorSpecExists      = apperror.BadRequest(apperror.KeyDoctorSpecExist)
	ErrAppointmentNotFound   = apperror.NotFound(apperror.KeyAppointmentNotFound)
	ErrSlotTaken             = apperror.BadRequest(apperror.KeyNoAppointmentPossible)
	ErrAlreadyCanceled       = apperror.BadRequest(apperror.KeyAppointmentCanceled)
	ErrAlreadyCompleted      = apperror.BadRequest(apperror.KeyAppointmentCompleted)
	ErrInvalidDate           = apperror.BadRequest(apperror.KeyInvalidDate)
	ErrAuditLogNotFound      = apperror.NotFound(apperror.KeyAuditLogNotFound)
)

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
