package commands_test

import (
	"testing"

	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	loc := testLocation(t)

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, loc, 2000, kernel.Money(9000))
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, loc, cmd.Location())
	assert.Equal(t, 2000, cmd.Quantity())
	assert.Equal(t, kernel.Money(9000), cmd.BidPrice())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), testLocation(t), 2000, kernel.Money(9000))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidLocation(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.Location{}, 2000, kernel.Money(9000))
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), testLocation(t), 0, kernel.Money(9000))
	require.Error(t, err)
}

func TestNewConfirmOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewConfirmOrderCommand(orderID, driverID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, driverID, cmd.DriverID())
}

func TestNewConfirmOrderCommand_InvalidDriverID(t *testing.T) {
	_, err := commands.NewConfirmOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
