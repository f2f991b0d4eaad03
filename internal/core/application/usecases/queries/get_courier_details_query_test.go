package queries_test

import (
	"testing"

	"onboarding/internal/core/application/usecases/queries"
	"onboarding/internal/core/domain/model/kernel"
	"onboarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCourierDetailsQuery_Success(t *testing.T) {
	courierID := kernel.NewUUID()

	query, err := queries.NewGetCourierDetailsQuery(courierID)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())
}

func TestNewGetCourierDetailsQuery_InvalidCourierID(t *testing.T) {
	query, err := queries.NewGetCourierDetailsQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, queries.GetCourierDetailsQuery{}, query)
}

func TestGetCourierDetailsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetCourierDetailsQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierDetailsQueryIsNotConstructed)
}

func TestGetReviewBacklogQuery_Validate(t *testing.T) {
	t.Run("constructed", func(t *testing.T) {
		query := queries.NewGetReviewBacklogQuery()
		assert.NoError(t, query.Validate())
	})

	t.Run("not constructed", func(t *testing.T) {
		var query queries.GetReviewBacklogQuery
		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetReviewBacklogQueryIsNotConstructed)
	})
}
