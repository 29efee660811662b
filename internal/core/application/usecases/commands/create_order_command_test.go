package commands_test

import (
	"testing"
	"time"

	"governance/internal/core/application/usecases/commands"
	"governance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []commands.OrderItemInput {
	return []commands.OrderItemInput{{ProductName: "Mug", Quantity: 2, PriceSnapshot: 10}}
}

func TestNewCreateOrderCommand(t *testing.T) {
	due := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	revenue := 5.0

	t.Run("should create valid command", func(t *testing.T) {
		id, org, customer := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, org, customer, validItems(), 20, &revenue, &due)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, org, cmd.OrgID())
		assert.Equal(t, customer, cmd.CustomerID())
		assert.Equal(t, validItems(), cmd.Items())
		assert.InDelta(t, 20.0, cmd.TotalAmount(), 0.0001)
		assert.Equal(t, &revenue, cmd.RevenueEstimate())
		assert.Equal(t, &due, cmd.DueDate())
	})

	t.Run("should report all invalid arguments", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, kernel.NewUUID(), nil, 0, nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "orgId")
		assert.NotContains(t, err.Error(), "customerId")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), 0)
	require.Error(t, err)

	_, err = commands.NewChangeOrderStatusCommand(kernel.UUID{}, 2)
	require.Error(t, err)

	require.ErrorIs(t, commands.ChangeOrderStatusCommand{}.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}

func TestNewCreateWorkOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, cmd.Quantity())

	_, err = commands.NewCreateWorkOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 0, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orderId")
	assert.Contains(t, err.Error(), "quantity must be greater than 0")
}
