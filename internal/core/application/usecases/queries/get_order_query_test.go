package queries_test

import (
	"testing"

	"tanker/internal/core/application/usecases/queries"
	"tanker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	q, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, q.OrderID())
	require.NoError(t, q.Validate())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	var q queries.GetOrderQuery
	err := q.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOpenOrdersQuery_Validate(t *testing.T) {
	q := queries.NewGetOpenOrdersQuery()
	require.NoError(t, q.Validate())

	var zero queries.GetOpenOrdersQuery
	require.Error(t, zero.Validate())
}
