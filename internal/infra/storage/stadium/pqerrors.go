package stadium

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
	pqStringTooLong       = "22001"
	pqNumericOutOfRange   = "22003"
)

const fkOwner = "stadiums_owner_id_fkey"

func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}

	switch pqErr.Code {
	case pqForeignKeyViolation:
		if pqErr.Constraint == fkOwner {
			return fmt.Errorf("%w: %s", ErrOwnerReference, op)
		}
	case pqCheckViolation:
		return fmt.Errorf("%w: %s: %s", ErrInvalidValue, op, pqErr.Constraint)
	case pqStringTooLong, pqNumericOutOfRange:
		return fmt.Errorf("%w: %s: %s", ErrInvalidValue, op, pqErr.Message)
	}

	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
