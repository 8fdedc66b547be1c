package order_test

import (
	"testing"

	"tanker/internal/core/domain/model/order"
	"tanker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Open, "open"},
		{order.SupplierTimer, "supplier_timer"},
		{order.Accepted, "accepted"},
		{order.RideStarted, "ride_started"},
		{order.Reached, "reached"},
		{order.Finished, "finished"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusValidate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Open, order.SupplierTimer, order.Accepted,
			order.RideStarted, order.Reached, order.Finished,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("full forward path", func(t *testing.T) {
		s := order.Open

		s, err := s.AcceptBid()
		require.NoError(t, err)
		assert.Equal(t, order.SupplierTimer, s)

		s, err = s.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, s)

		s, err = s.StartRide()
		require.NoError(t, err)
		assert.Equal(t, order.RideStarted, s)

		s, err = s.Reach()
		require.NoError(t, err)
		assert.Equal(t, order.Reached, s)

		s, err = s.Finish()
		require.NoError(t, err)
		assert.Equal(t, order.Finished, s)
	})

	t.Run("no state is re-enterable once left", func(t *testing.T) {
		_, err := order.Accepted.AcceptBid()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.Finished.Confirm()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.Reached.StartRide()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("invalid transition reports the current status", func(t *testing.T) {
		_, err := order.Open.StartRide()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires status accepted")
		assert.Contains(t, err.Error(), "current status is open")
	})

	t.Run("skipping a state is not allowed", func(t *testing.T) {
		_, err := order.Open.Confirm()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.SupplierTimer.StartRide()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.Accepted.Finish()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestStatusCanBeCancelled(t *testing.T) {
	assert.True(t, order.Open.CanBeCancelled())
	assert.True(t, order.SupplierTimer.CanBeCancelled())
	assert.True(t, order.Accepted.CanBeCancelled())
	assert.True(t, order.RideStarted.CanBeCancelled())
	assert.True(t, order.Reached.CanBeCancelled())
	assert.False(t, order.Finished.CanBeCancelled())
	assert.False(t, order.Unknown.CanBeCancelled())
}

func TestStatusHasDriverLockedIn(t *testing.T) {
	assert.False(t, order.Open.HasDriverLockedIn())
	assert.False(t, order.SupplierTimer.HasDriverLockedIn())
	assert.True(t, order.Accepted.HasDriverLockedIn())
	assert.True(t, order.RideStarted.HasDriverLockedIn())
	assert.True(t, order.Reached.HasDriverLockedIn())
	assert.True(t, order.Finished.HasDriverLockedIn())
}

func TestStatusSupplierDriverConsistency(t *testing.T) {
	t.Run("open order must not have a supplier", func(t *testing.T) {
		require.Error(t, order.Open.ValidateCanHaveSupplier(true))
		require.NoError(t, order.Open.ValidateCanHaveSupplier(false))
	})

	t.Run("post-acceptance order must have a supplier", func(t *testing.T) {
		require.NoError(t, order.SupplierTimer.ValidateCanHaveSupplier(true))
		require.Error(t, order.SupplierTimer.ValidateCanHaveSupplier(false))
		require.NoError(t, order.Finished.ValidateCanHaveSupplier(true))
	})

	t.Run("driver only from accepted onward", func(t *testing.T) {
		require.Error(t, order.Open.ValidateCanHaveDriver(true))
		require.Error(t, order.SupplierTimer.ValidateCanHaveDriver(true))
		require.NoError(t, order.Accepted.ValidateCanHaveDriver(true))
		require.Error(t, order.Accepted.ValidateCanHaveDriver(false))
		require.NoError(t, order.RideStarted.ValidateCanHaveDriver(true))
	})
}
