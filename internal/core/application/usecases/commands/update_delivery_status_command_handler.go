package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/core/domain/services"
)

// UpdateDeliveryStatusCommandHandler applies a deliverer-requested status
// change. Ownership, the allow-list, and the transition table are checked in
// that sequence, and the write is an atomic compare-and-set against the
// status the order had when it was read: of two racing updates from the same
// starting status, exactly one wins and the loser observes a stale-state
// conflict.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for
// deliverer-driven status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-update command and returns the updated order.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	policy := services.NewDeliveryPolicy()
	if err = policy.AuthorizeActor(aggregate, cmd.DelivererID()); err != nil {
		return nil, err
	}
	if err = policy.ValidateRequestedStatus(cmd.Target()); err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = aggregate.UpdateDeliveryStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = orderRepo.CompareAndSetStatus(ctx, aggregate.ID(), expected, aggregate.Status()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
