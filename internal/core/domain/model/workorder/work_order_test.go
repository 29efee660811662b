package workorder_test

import (
	"testing"
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkOrder(t *testing.T) {
	start := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	t.Run("should create pending work order", func(t *testing.T) {
		id := kernel.NewUUID()
		w, err := workorder.NewWorkOrder(id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 12, &start, &end)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.ID().IsEqual(id))
		assert.Equal(t, 12, w.Quantity())
		assert.Equal(t, workorder.Pending, w.Status())
		assert.Equal(t, &start, w.PlannedStart())
		assert.Equal(t, &end, w.PlannedEnd())
	})

	t.Run("should report every missing reference", func(t *testing.T) {
		w, err := workorder.NewWorkOrder(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, 0, nil, nil)

		require.Error(t, err)
		assert.Nil(t, w)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, field := range []string{"orderId", "orderItemId", "manufacturerId", "quantity"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestWorkOrder_ChangeStatus(t *testing.T) {
	w, err := workorder.RestoreWorkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		1, nil, nil, workorder.Pending)
	require.NoError(t, err)

	err = w.ChangeStatus(workorder.InProduction)
	require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	assert.Contains(t, err.Error(), "work order cannot move from pending to in_production")

	require.NoError(t, w.ChangeStatus(workorder.Queued))
	require.NoError(t, w.ChangeStatus(workorder.InProduction))
	assert.Equal(t, workorder.InProduction, w.Status())
}
