package order_test

import (
	"testing"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDetail(t *testing.T, productID int64, quantity int, price float64) order.Detail {
	t.Helper()
	detail, err := order.NewDetail(productID, quantity, price)
	require.NoError(t, err)
	return detail
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, "12 Nguyen Hue, District 1", "", "", []order.Detail{
		mustDetail(t, 7, 2, 150.0),
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("defaults_applied", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.DefaultPaymentStatus, o.PaymentStatus())
		assert.Equal(t, order.DefaultPaymentMethod, o.PaymentMethod())
		assert.Nil(t, o.Deliverer())
		assert.Zero(t, o.ID())
	})

	t.Run("explicit_status_is_kept_when_valid", func(t *testing.T) {
		o, err := order.NewOrder(1, "addr", order.OutForDelivery, "PAID", nil)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, "PAID", o.PaymentStatus())
	})

	t.Run("undefined_status_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder(1, "addr", "SHIPPED", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_address_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder(1, "", "", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_user_is_rejected", func(t *testing.T) {
		_, err := order.NewOrder(0, "addr", "", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		require.NoError(t, newPendingOrder(t).Validate())
	})

	t.Run("zero_value_order_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetID(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.SetID(42))
	assert.EqualValues(t, 42, o.ID())

	require.ErrorIs(t, o.SetID(43), order.ErrOrderAlreadyIdentified)
	require.Error(t, newPendingOrder(t).SetID(0))
}

func TestOrder_AssignDeliverer(t *testing.T) {
	t.Run("assignment_forces_status_regardless_of_prior_state", func(t *testing.T) {
		for _, prior := range []order.Status{
			order.Pending,
			order.AssignedToDeliverer,
			order.OutForDelivery,
			order.Delivered,
		} {
			o, err := order.NewOrder(1, "addr", prior, "", nil)
			require.NoError(t, err)

			require.NoError(t, o.AssignDeliverer(9))
			assert.Equal(t, order.AssignedToDeliverer, o.Status(), "prior %s", prior)
			require.NotNil(t, o.Deliverer())
			assert.EqualValues(t, 9, *o.Deliverer())
		}
	})

	t.Run("reassignment_overwrites_deliverer", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.AssignDeliverer(9))
		require.NoError(t, o.AssignDeliverer(10))

		assert.EqualValues(t, 10, *o.Deliverer())
		assert.Equal(t, order.AssignedToDeliverer, o.Status())
	})

	t.Run("invalid_deliverer_id_is_rejected_without_side_effects", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.AssignDeliverer(0))
		assert.Nil(t, o.Deliverer())
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_UpdateDeliveryStatus(t *testing.T) {
	t.Run("walks_the_happy_path", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AssignDeliverer(9))

		require.NoError(t, o.UpdateDeliveryStatus(order.OutForDelivery))
		require.NoError(t, o.UpdateDeliveryStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_pairs_outside_the_table", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.UpdateDeliveryStatus(order.Delivered)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("repeating_the_current_status_is_rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AssignDeliverer(9))
		require.NoError(t, o.UpdateDeliveryStatus(order.OutForDelivery))

		err := o.UpdateDeliveryStatus(order.OutForDelivery)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	t.Run("advances_delivered_order", func(t *testing.T) {
		o, err := order.NewOrder(1, "addr", order.Delivered, "", nil)
		require.NoError(t, err)

		require.NoError(t, o.ConfirmDelivery())
		assert.Equal(t, order.DeliveryConfirmed, o.Status())
	})

	t.Run("rejects_any_other_current_status", func(t *testing.T) {
		for _, prior := range []order.Status{
			order.Pending,
			order.AssignedToDeliverer,
			order.OutForDelivery,
			order.DeliveryConfirmed,
			order.Failed,
		} {
			o, err := order.NewOrder(1, "addr", prior, "", nil)
			require.NoError(t, err)

			confirmErr := o.ConfirmDelivery()
			require.ErrorIs(t, confirmErr, order.ErrInvalidTransition, "prior %s", prior)
			assert.Equal(t, prior, o.Status())
		}
	})
}

func TestOrder_Amend(t *testing.T) {
	t.Run("bypasses_the_transition_table", func(t *testing.T) {
		o := newPendingOrder(t)

		// Legacy update endpoint may jump straight to a terminal status.
		require.NoError(t, o.Amend("new address", order.Failed))
		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "new address", o.Address())
	})

	t.Run("still_rejects_undefined_status_values", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Amend("new address", "SHIPPED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rehydrates_full_state", func(t *testing.T) {
		delivererID := int64(9)
		o, err := order.RestoreOrder(42, 1, &delivererID, "addr", order.OutForDelivery,
			"PAID", "COD", []order.Detail{mustDetail(t, 7, 2, 150.0)})

		require.NoError(t, err)
		assert.EqualValues(t, 42, o.ID())
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Deliverer())
		assert.EqualValues(t, 9, *o.Deliverer())
		assert.Len(t, o.Details(), 1)
	})

	t.Run("rejects_corrupted_rows", func(t *testing.T) {
		_, err := order.RestoreOrder(42, 1, nil, "addr", "SHIPPED", "PAID", "COD", nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
