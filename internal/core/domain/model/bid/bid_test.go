package bid_test

import (
	"testing"
	"time"

	"tanker/internal/core/domain/model/bid"
	"tanker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBid(t *testing.T) {
	now := time.Now()

	t.Run("creates valid bid", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		supplierID := kernel.NewUUID()

		b, err := bid.NewBid(id, orderID, supplierID, kernel.Money(9500), now)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(id))
		assert.True(t, b.OrderID().IsEqual(orderID))
		assert.True(t, b.SupplierID().IsEqual(supplierID))
		assert.Equal(t, kernel.Money(9500), b.Price())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.Money(0), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "money amount is invalid")
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := bid.NewBid(invalidID, kernel.NewUUID(), kernel.NewUUID(), kernel.Money(9500), now)
		require.Error(t, err)

		_, err = bid.NewBid(kernel.NewUUID(), invalidID, kernel.NewUUID(), kernel.Money(9500), now)
		require.Error(t, err)

		_, err = bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), invalidID, kernel.Money(9500), now)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var b bid.Bid
		require.ErrorIs(t, b.Validate(), bid.ErrBidIsNotConstructed)
	})
}
