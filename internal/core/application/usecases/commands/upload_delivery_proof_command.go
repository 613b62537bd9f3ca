package commands

import (
	"errors"
	"fmt"

	"orderdelivery/internal/core/domain/model/proof"
	"orderdelivery/internal/core/ports"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrUploadDeliveryProofCommandIsNotConstructed = errors.New(
	"UploadDeliveryProofCommand must be created via NewUploadDeliveryProofCommand constructor",
)

// UploadDeliveryProofCommand submits proof of delivery for an order: an
// image payload plus optional notes. Accepting the proof is what advances
// the order from Delivered to DeliveryConfirmed.
type UploadDeliveryProofCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	delivererID int64
	notes       string
	image       ports.ImageUpload

	guard guard.ConstructorGuard
}

// NewUploadDeliveryProofCommand creates a validated proof-upload command.
// The image payload must be present, be an image content type, and not
// exceed proof.MaxImageBytes.
func NewUploadDeliveryProofCommand(orderID, delivererID int64, notes string, image ports.ImageUpload) (UploadDeliveryProofCommand, error) {
	cmd := UploadDeliveryProofCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDelivererID(delivererID),
		cmd.setImage(image),
	); err != nil {
		return UploadDeliveryProofCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDeliveryProofCommand) Validate() error {
	return c.guard.Validate(ErrUploadDeliveryProofCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UploadDeliveryProofCommand) OrderID() int64 {
	return c.orderID
}

// DelivererID returns the submitting deliverer's identifier.
func (c UploadDeliveryProofCommand) DelivererID() int64 {
	return c.delivererID
}

// Notes returns the optional free-form notes.
func (c UploadDeliveryProofCommand) Notes() string {
	return c.notes
}

// Image returns the validated image payload.
func (c UploadDeliveryProofCommand) Image() ports.ImageUpload {
	return c.image
}

func (c *UploadDeliveryProofCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *UploadDeliveryProofCommand) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivererId",
			fmt.Errorf("%d is not a valid deliverer id", delivererID))
	}
	c.delivererID = delivererID
	return nil
}

func (c *UploadDeliveryProofCommand) setImage(image ports.ImageUpload) error {
	if err := proof.ValidateImage(image.ContentType, image.Size); err != nil {
		return err
	}
	c.image = image
	return nil
}
