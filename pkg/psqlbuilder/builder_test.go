package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("slug", "name").
		From("room_types").
		Where(squirrel.Eq{"slug": "single"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT slug, name FROM room_types WHERE slug = $1", query)
	assert.Equal(t, []interface{}{"single"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("bookings").
		Set("status", "confirmed").
		Where(squirrel.Eq{"id": int64(7)}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET status = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)
}
