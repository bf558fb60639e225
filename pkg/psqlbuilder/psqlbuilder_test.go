package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("movie_name").
		From("movie_catalog").
		Where(squirrel.Eq{"theatre_name": "PVR"}).
		Where(squirrel.ILike{"movie_name": "%dune%"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT movie_name FROM movie_catalog WHERE theatre_name = $1 AND movie_name ILIKE $2", query)
	assert.Equal(t, []interface{}{"PVR", "%dune%"}, args)
}

func TestDelete_DollarPlaceholders(t *testing.T) {
	query, args, err := Delete("movie_catalog").
		Where(squirrel.Eq{"movie_name": "Dune", "theatre_name": "PVR"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM movie_catalog WHERE movie_name = $1 AND theatre_name = $2", query)
	assert.Equal(t, []interface{}{"Dune", "PVR"}, args)
}
