package stadium

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unknown owner", &pq.Error{Code: pqForeignKeyViolation, Constraint: fkOwner}, ErrOwnerReference},
		{"negative price", &pq.Error{Code: pqCheckViolation, Constraint: "stadiums_price_check"}, ErrInvalidValue},
		{"district too long", &pq.Error{Code: pqStringTooLong}, ErrInvalidValue},
		{"price overflow", &pq.Error{Code: pqNumericOutOfRange}, ErrInvalidValue},
		{"other foreign key", &pq.Error{Code: pqForeignKeyViolation, Constraint: "other_fkey"}, ErrExecQuery},
		{"driver error", errors.New("bad connection"), ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError("Create", tt.err), tt.want)
		})
	}
}
