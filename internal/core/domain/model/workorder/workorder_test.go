package workorder_test

import (
	"testing"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetails() workorder.Details {
	return workorder.Details{
		Description: "Replace worn brake pads on bogie 2",
		Category:    "Brakes",
		TrainNumber: "X2000-2041",
		Vehicle:     "UA2 2541",
		Location:    "Hagalund",
		Track:       "12",
	}
}

func TestNewWorkOrder(t *testing.T) {
	now := time.Date(2025, 11, 27, 23, 54, 0, 0, time.UTC)

	t.Run("should create a work order with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		wo, err := workorder.NewWorkOrder(id, "WO-1042", "Brake overhaul", "SJ AB", testDetails(), now)

		require.NoError(t, err)
		require.NoError(t, wo.Validate())
		assert.True(t, wo.ID().IsEqual(id))
		assert.Equal(t, "WO-1042", wo.OrderNumber())
		assert.Equal(t, "Brake overhaul", wo.Title())
		assert.Equal(t, "SJ AB", wo.Customer())
		assert.Equal(t, testDetails(), wo.Details())
		assert.Equal(t, workorder.Open, wo.Status())
		assert.Equal(t, now, wo.CreatedAt())
		assert.Equal(t, now, wo.UpdatedAt())
		assert.Nil(t, wo.ArchivedAt())
	})

	t.Run("should allow blank optional details", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, now)

		require.NoError(t, err)
		assert.Equal(t, workorder.Details{}, wo.Details())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := workorder.NewWorkOrder(kernel.UUID{}, "WO-1", "Inspection", "MTR", workorder.Details{}, now)

		require.Error(t, err)
	})

	t.Run("should reject blank required fields", func(t *testing.T) {
		testCases := []struct {
			name        string
			orderNumber string
			title       string
			customer    string
		}{
			{"blank order number", "   ", "Inspection", "MTR"},
			{"blank title", "WO-1", "", "MTR"},
			{"blank customer", "WO-1", "Inspection", "\t"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := workorder.NewWorkOrder(
					kernel.NewUUID(), tc.orderNumber, tc.title, tc.customer, workorder.Details{}, now)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should restore a work order with any valid status", func(t *testing.T) {
		archived := now.Add(time.Hour)

		wo, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), "WO-7", "Wheel lathe", "Green Cargo", testDetails(),
			workorder.Invoiced, now, now, &archived)

		require.NoError(t, err)
		assert.Equal(t, workorder.Invoiced, wo.Status())
		require.NotNil(t, wo.ArchivedAt())
		assert.Equal(t, archived, *wo.ArchivedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), "WO-7", "Wheel lathe", "Green Cargo", workorder.Details{},
			workorder.Unknown, now, now, nil)

		require.Error(t, err)
	})
}

func TestWorkOrder_Validate(t *testing.T) {
	t.Run("should reject directly instantiated work orders", func(t *testing.T) {
		var wo workorder.WorkOrder

		err := wo.Validate()

		require.Error(t, err)
		assert.Equal(t, workorder.ErrWorkOrderIsNotConstructed, err)
	})

	t.Run("should reject nil work orders", func(t *testing.T) {
		var wo *workorder.WorkOrder

		require.Error(t, wo.Validate())
	})
}

func TestWorkOrder_Update(t *testing.T) {
	created := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	edited := created.Add(48 * time.Hour)

	t.Run("should update editable fields and bump updatedAt", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, created)
		require.NoError(t, err)

		err = wo.Update("WO-1", "Full inspection", "MTR Nordic", testDetails(), edited)

		require.NoError(t, err)
		assert.Equal(t, "Full inspection", wo.Title())
		assert.Equal(t, "MTR Nordic", wo.Customer())
		assert.Equal(t, testDetails(), wo.Details())
		assert.Equal(t, created, wo.CreatedAt())
		assert.Equal(t, edited, wo.UpdatedAt())
	})

	t.Run("should not touch status", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, created)
		require.NoError(t, err)
		require.NoError(t, wo.ChangeStatus(workorder.InProgress, created))

		require.NoError(t, wo.Update("WO-1", "Inspection", "MTR", workorder.Details{}, edited))

		assert.Equal(t, workorder.InProgress, wo.Status())
	})

	t.Run("should reject blank required fields and keep prior values", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, created)
		require.NoError(t, err)

		err = wo.Update("", "Inspection", "MTR", workorder.Details{}, edited)

		require.Error(t, err)
		assert.Equal(t, "WO-1", wo.OrderNumber())
	})
}

func TestWorkOrder_ChangeStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should change status when the workflow accepts", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, now)
		require.NoError(t, err)

		later := now.Add(time.Minute)
		err = wo.ChangeStatus(workorder.ReadyForInvoicing, later)

		require.NoError(t, err)
		assert.Equal(t, workorder.ReadyForInvoicing, wo.Status())
		assert.Equal(t, later, wo.UpdatedAt())
	})

	t.Run("should allow moving backward from a non-terminal status", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, now)
		require.NoError(t, err)
		require.NoError(t, wo.ChangeStatus(workorder.Completed, now))

		require.NoError(t, wo.ChangeStatus(workorder.Open, now))

		assert.Equal(t, workorder.Open, wo.Status())
	})

	t.Run("should reject transitions from a terminal status", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(
			kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{},
			workorder.Cancelled, now, now, nil)
		require.NoError(t, err)

		err = wo.ChangeStatus(workorder.Open, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "terminal state")
		assert.Equal(t, workorder.Cancelled, wo.Status())
	})
}

func TestWorkOrder_Archive(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should set archivedAt once", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-1", "Inspection", "MTR", workorder.Details{}, now)
		require.NoError(t, err)

		first := now.Add(time.Hour)
		wo.Archive(first)
		wo.Archive(first.Add(time.Hour))

		require.NotNil(t, wo.ArchivedAt())
		assert.Equal(t, first, *wo.ArchivedAt())
	})
}

func TestWorkOrder_IsEqual(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should compare by identity", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := workorder.NewWorkOrder(id, "WO-1", "Inspection", "MTR", workorder.Details{}, now)
		require.NoError(t, err)
		b, err := workorder.RestoreWorkOrder(id, "WO-1", "Renamed", "MTR", workorder.Details{},
			workorder.Completed, now, now, nil)
		require.NoError(t, err)
		c, err := workorder.NewWorkOrder(kernel.NewUUID(), "WO-2", "Other", "SJ", workorder.Details{}, now)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
