package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_CreatesValidQuery(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery()

	require.NoError(t, query.Validate())
}

func TestGetActiveOrdersQuery_ZeroValue_FailsValidation(t *testing.T) {
	var query queries.GetActiveOrdersQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
