package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/order"
)

// AssignDelivererCommandHandler orchestrates deliverer assignment.
// Verifies that both the order and a deliverer-role user exist, then forces
// the order into AssignedToDeliverer within a single transaction.
type AssignDelivererCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDelivererCommandHandler creates a handler for assignment operations.
func NewAssignDelivererCommandHandler(uowFactory UoWFactory) AssignDelivererCommandHandler {
	return AssignDelivererCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the updated order.
// A missing order or a user without the deliverer role surfaces as an
// errs.ObjectNotFoundError; the transition table is deliberately not
// consulted (assignment is the workflow entry point and may re-assign).
func (h AssignDelivererCommandHandler) Handle(ctx context.Context, cmd AssignDelivererCommand) (*order.Order, error) {
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
	userRepo := uow.UserRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if _, err = userRepo.GetDeliverer(ctx, cmd.DelivererID()); err != nil {
		return nil, err
	}

	if err = aggregate.AssignDeliverer(cmd.DelivererID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
