package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"stadium_id": 1}).
		Where(squirrel.NotEq{"status": "cancelled"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE stadium_id = $1 AND status <> $2", query)
	assert.Equal(t, []interface{}{1, "cancelled"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("bookings").
		Set("status", "confirmed").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": 7}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2", query)
	assert.Equal(t, []interface{}{"confirmed", 7}, args)
}
