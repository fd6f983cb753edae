package booking

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	pqExclusionViolation  = "23P01"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
	pqStringTooLong       = "22001"
	pqNumericOutOfRange   = "22003"
)

const (
	fkStadium = "bookings_stadium_id_fkey"
	fkUser    = "bookings_user_id_fkey"
)

// mapWriteError переводит ошибки ограничений БД в ошибки репозитория
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}

	switch pqErr.Code {
	case pqExclusionViolation:
		return fmt.Errorf("%w: %s: %s", ErrSlotNotAvailable, op, pqErr.Constraint)
	case pqForeignKeyViolation:
		switch pqErr.Constraint {
		case fkStadium:
			return fmt.Errorf("%w: %s", ErrStadiumReference, op)
		case fkUser:
			return fmt.Errorf("%w: %s", ErrUserReference, op)
		}
		return fmt.Errorf("%w: %s: %s", ErrConstraint, op, pqErr.Constraint)
	case pqCheckViolation:
		return fmt.Errorf("%w: %s: %s", ErrInvalidValue, op, pqErr.Constraint)
	case pqStringTooLong, pqNumericOutOfRange:
		return fmt.Errorf("%w: %s: %s", ErrInvalidValue, op, pqErr.Message)
	}

	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
