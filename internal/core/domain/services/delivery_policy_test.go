package services_test

import (
	"testing"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/core/domain/services"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func assignedOrder(t *testing.T, delivererID int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, "addr", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, o.AssignDeliverer(delivererID))
	return o
}

func TestDeliveryPolicy_AuthorizeActor(t *testing.T) {
	policy := services.NewDeliveryPolicy()

	t.Run("owner_passes", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeActor(assignedOrder(t, 9), 9))
	})

	t.Run("different_deliverer_is_rejected", func(t *testing.T) {
		err := policy.AuthorizeActor(assignedOrder(t, 9), 10)
		require.ErrorIs(t, err, services.ErrOrderNotAssignedToDeliverer)
	})

	t.Run("unassigned_order_is_rejected", func(t *testing.T) {
		o, err := order.NewOrder(1, "addr", "", "", nil)
		require.NoError(t, err)

		require.ErrorIs(t, policy.AuthorizeActor(o, 9), services.ErrOrderNotAssignedToDeliverer)
	})

	t.Run("unconstructed_order_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, policy.AuthorizeActor(&o, 9), order.ErrOrderIsNotConstructed)
	})
}

func TestDeliveryPolicy_ValidateRequestedStatus(t *testing.T) {
	policy := services.NewDeliveryPolicy()

	t.Run("allow_list_members_pass", func(t *testing.T) {
		for _, s := range []order.Status{order.OutForDelivery, order.Delivered, order.Failed} {
			require.NoError(t, policy.ValidateRequestedStatus(s), s)
		}
	})

	t.Run("statuses_outside_the_allow_list_are_rejected", func(t *testing.T) {
		// Rejected even where the transition table has an entry for the
		// pair (e.g. PENDING -> ASSIGNED_TO_DELIVERER): the allow-list is
		// an independent predicate.
		for _, s := range []order.Status{
			order.Pending,
			order.AssignedToDeliverer,
			order.DeliveryConfirmed,
			"SHIPPED",
		} {
			require.ErrorIs(t, policy.ValidateRequestedStatus(s), errs.ErrValueIsInvalid, s)
		}
	})
}
