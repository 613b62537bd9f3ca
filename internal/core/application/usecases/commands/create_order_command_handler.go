package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order creation. The order row and its
// detail lines are persisted as one unit; the owning user must exist.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the persisted order with
// its store-generated identity attached.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.UserID(), cmd.Address(), cmd.Status(), cmd.PaymentStatus(), cmd.Details())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
