package order

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

// ErrDetailIsNotConstructed is returned when a Detail was not created through
// the NewDetail factory function.
var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail constructor")

// Detail is a single order line: a product reference, a quantity, and the
// price captured at order-creation time. The price is a snapshot and is never
// refreshed from the product catalog; later price changes do not affect
// existing orders.
//
// Details are created in bulk when the order is created and are immutable
// afterwards. Their lifecycle is bound to the owning order.
type Detail struct {
	productID int64
	quantity  int
	price     float64

	guard guard.ConstructorGuard
}

// NewDetail creates an order line with validation. Quantity must be positive
// and the price snapshot must not be negative.
func NewDetail(productID int64, quantity int, price float64) (Detail, error) {
	detail := Detail{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detail.setProductID(productID),
		detail.setQuantity(quantity),
		detail.setPrice(price),
	); err != nil {
		return Detail{}, err
	}

	return detail, nil
}

// Validate ensures the detail was created via NewDetail.
func (d Detail) Validate() error {
	return d.guard.Validate(ErrDetailIsNotConstructed)
}

// ProductID returns the referenced product identifier.
func (d Detail) ProductID() int64 {
	return d.productID
}

// Quantity returns the ordered quantity.
func (d Detail) Quantity() int {
	return d.quantity
}

// Price returns the price snapshot captured at order-creation time.
func (d Detail) Price() float64 {
	return d.price
}

func (d *Detail) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not a valid product id", productID))
	}
	d.productID = productID
	return nil
}

func (d *Detail) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *Detail) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	d.price = price
	return nil
}
