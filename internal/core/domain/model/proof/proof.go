// Package proof models proof-of-delivery records: evidentiary images with
// optional notes submitted by a deliverer when a delivery is completed.
// Proof records are append-only; once created they are never modified or
// destroyed, even if the order's status changes again.
package proof

import (
	"errors"
	"fmt"
	"strings"

	"orderdelivery/internal/pkg/errs"
)

// MaxImageBytes is the configured ceiling for proof image payloads.
const MaxImageBytes = 5 << 20 // 5 MiB

// ErrProofIsNotConstructed is returned when a Proof instance was not created
// through the NewProof factory function.
var ErrProofIsNotConstructed = errors.New("Proof must be created via NewProof constructor")

// Proof is a proof-of-delivery record for one delivery cycle of an order.
type Proof struct {
	id          int64
	orderID     int64
	delivererID int64
	imageRef    string
	notes       string

	isConstructed bool
}

// NewProof creates a proof record referencing a stored image.
// The image payload itself must have been validated with ValidateImage and
// persisted to the artifact store before the record is created.
func NewProof(orderID, delivererID int64, imageRef, notes string) (*Proof, error) {
	p := &Proof{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setOrderID(orderID),
		p.setDelivererID(delivererID),
		p.setImageRef(imageRef),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProof reconstructs a proof record from persisted state.
func RestoreProof(id, orderID, delivererID int64, imageRef, notes string) (*Proof, error) {
	p, err := NewProof(orderID, delivererID, imageRef, notes)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("proofId",
			fmt.Errorf("%d is not a valid proof id", id))
	}

	p.id = id
	return p, nil
}

// Validate ensures the proof was created through a constructor.
func (p *Proof) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProofIsNotConstructed
	}
	return nil
}

// ID returns the proof's persistent identity, or 0 before the first insert.
func (p *Proof) ID() int64 {
	return p.id
}

// SetID attaches the store-generated identity after the first insert.
func (p *Proof) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("proofId",
			fmt.Errorf("%d is not a valid proof id", id))
	}
	p.id = id
	return nil
}

// OrderID returns the identifier of the proven order.
func (p *Proof) OrderID() int64 {
	return p.orderID
}

// DelivererID returns the identifier of the deliverer who submitted the proof.
func (p *Proof) DelivererID() int64 {
	return p.delivererID
}

// ImageRef returns the artifact-store reference of the proof image.
func (p *Proof) ImageRef() string {
	return p.imageRef
}

// Notes returns the optional free-form notes.
func (p *Proof) Notes() string {
	return p.notes
}

func (p *Proof) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	p.orderID = orderID
	return nil
}

func (p *Proof) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivererId",
			fmt.Errorf("%d is not a valid deliverer id", delivererID))
	}
	p.delivererID = delivererID
	return nil
}

func (p *Proof) setImageRef(imageRef string) error {
	if imageRef == "" {
		return errs.NewValueIsRequiredError("imageRef")
	}
	p.imageRef = imageRef
	return nil
}

// ValidateImage checks an incoming proof image payload: it must be present,
// declare an image/* content type, and not exceed MaxImageBytes. Size-ceiling
// violations unwrap to errs.ErrValueIsOutOfRange so the boundary can answer
// with 413 rather than a generic validation failure.
func ValidateImage(contentType string, size int64) error {
	if size <= 0 {
		return errs.NewValueIsRequiredError("image")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return errs.NewValueIsInvalidErrorWithCause("image",
			fmt.Errorf("content type %q is not an image", contentType))
	}
	if size > MaxImageBytes {
		return errs.NewValueIsOutOfRangeError("image size", size, 1, MaxImageBytes)
	}
	return nil
}
