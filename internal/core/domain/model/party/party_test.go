package party_test

import (
	"testing"

	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/core/domain/model/party"
	"tanker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierRecordRating(t *testing.T) {
	t.Run("first rating becomes the average", func(t *testing.T) {
		s, err := party.NewSupplier(kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, s.RecordRating(4))

		assert.InDelta(t, 4.0, s.Rating(), 1e-9)
		assert.Equal(t, 1, s.RatedOrders())
	})

	t.Run("running average is weighted by count", func(t *testing.T) {
		// existing average 4.0 over 3 orders, new rating 2
		// -> (4.0*3 + 2) / 4 = 3.5
		s, err := party.RestoreSupplier(kernel.NewUUID(), 4.0, 3)
		require.NoError(t, err)

		require.NoError(t, s.RecordRating(2))

		assert.InDelta(t, 3.5, s.Rating(), 1e-9)
		assert.Equal(t, 4, s.RatedOrders())
	})

	t.Run("rating must be between 1 and 5", func(t *testing.T) {
		s, err := party.NewSupplier(kernel.NewUUID())
		require.NoError(t, err)

		require.ErrorIs(t, s.RecordRating(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, s.RecordRating(6), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 0, s.RatedOrders())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s party.Supplier
		require.ErrorIs(t, s.Validate(), party.ErrSupplierIsNotConstructed)
	})
}

func TestRestoreSupplier(t *testing.T) {
	t.Run("rejects out-of-range stored rating", func(t *testing.T) {
		_, err := party.RestoreSupplier(kernel.NewUUID(), 5.5, 3)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative rated-order count", func(t *testing.T) {
		_, err := party.RestoreSupplier(kernel.NewUUID(), 4.0, -1)
		require.Error(t, err)
	})
}

func TestDriver(t *testing.T) {
	supplierID := kernel.NewUUID()

	t.Run("new driver is available and on the roster", func(t *testing.T) {
		d, err := party.NewDriver(kernel.NewUUID(), supplierID)

		require.NoError(t, err)
		assert.True(t, d.IsAvailable())
		assert.True(t, d.BelongsTo(supplierID))
		assert.False(t, d.BelongsTo(kernel.NewUUID()))
	})

	t.Run("availability toggles", func(t *testing.T) {
		d, err := party.NewDriver(kernel.NewUUID(), supplierID)
		require.NoError(t, err)

		d.MarkBusy()
		assert.False(t, d.IsAvailable())

		d.MarkAvailable()
		assert.True(t, d.IsAvailable())
	})

	t.Run("invalid identifiers are rejected", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := party.NewDriver(invalidID, supplierID)
		require.Error(t, err)

		_, err = party.NewDriver(kernel.NewUUID(), invalidID)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d party.Driver
		require.ErrorIs(t, d.Validate(), party.ErrDriverIsNotConstructed)
	})
}
