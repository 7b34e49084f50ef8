package database

import (
	stderrors "errors"

	"gorm.io/gorm"

	apperrors "github.com/trendtrails/server/internal/errors"
)

// IsNotFound checks for the GORM record-not-found error.
func IsNotFound(err error) bool {
	return stderrors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate checks for a duplicate-key violation.
func IsDuplicate(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey)
}

// Translate converts a storage error into an AppError for the given
// resource. Not-found and duplicate-key get their specific codes;
// everything else becomes a generic database error.
func Translate(err error, resource string) *apperrors.AppError {
	switch {
	case err == nil:
		return nil
	case IsNotFound(err):
		return apperrors.NotFound(resource)
	case IsDuplicate(err):
		return apperrors.AlreadyExists(resource)
	default:
		return apperrors.DatabaseError(err)
	}
}
