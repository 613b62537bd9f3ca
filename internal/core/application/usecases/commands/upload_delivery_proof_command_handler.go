package commands

import (
	"context"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/core/domain/model/proof"
	"orderdelivery/internal/core/domain/services"
	"orderdelivery/internal/core/ports"
)

// UploadDeliveryProofCommandHandler accepts proof of delivery. The proof
// record insert and the advance to DeliveryConfirmed happen in one database
// transaction: a reader never observes one without the other.
//
// The image blob is written to the artifact store before the database writes
// and is not part of the transaction. When a later write fails the blob is
// left orphaned and the error is returned to the caller; the orphan sweep
// reclaims the file.
type UploadDeliveryProofCommandHandler struct {
	uowFactory ProofUoWFactory
	imageStore ports.ProofImageStore
}

// NewUploadDeliveryProofCommandHandler creates a handler for proof uploads.
func NewUploadDeliveryProofCommandHandler(uowFactory ProofUoWFactory, imageStore ports.ProofImageStore) UploadDeliveryProofCommandHandler {
	return UploadDeliveryProofCommandHandler{
		uowFactory: uowFactory,
		imageStore: imageStore,
	}
}

// Handle processes the proof upload and returns the created proof record
// together with the confirmed order. The order must exist, be assigned to
// the submitting deliverer, and currently be in Delivered status.
func (h UploadDeliveryProofCommandHandler) Handle(ctx context.Context, cmd UploadDeliveryProofCommand) (*proof.Proof, *order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	proofRepo := uow.ProofRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	policy := services.NewDeliveryPolicy()
	if err = policy.AuthorizeActor(aggregate, cmd.DelivererID()); err != nil {
		return nil, nil, err
	}

	if aggregate.Status() != order.Delivered {
		return nil, nil, order.NewInvalidTransitionError(aggregate.Status(), order.DeliveryConfirmed)
	}

	imageRef, err := h.imageStore.Save(ctx, cmd.Image())
	if err != nil {
		return nil, nil, err
	}

	record, err := proof.NewProof(cmd.OrderID(), cmd.DelivererID(), imageRef, cmd.Notes())
	if err != nil {
		return nil, nil, err
	}

	if err = proofRepo.Add(ctx, record); err != nil {
		return nil, nil, err
	}

	if err = aggregate.ConfirmDelivery(); err != nil {
		return nil, nil, err
	}

	if err = orderRepo.CompareAndSetStatus(ctx, aggregate.ID(), order.Delivered, order.DeliveryConfirmed); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return record, aggregate, nil
}
