// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"orderdelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Identity is a store-generated autoincrement; the deliverer
// column is NULL until first assignment.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"index;not null"`
	DelivererID   *int64 `gorm:"index"`
	Address       string
	Status        string `gorm:"type:varchar(32);index;not null"`
	PaymentStatus string `gorm:"type:varchar(32);not null"`
	PaymentMethod string `gorm:"type:varchar(32);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Details []OrderDetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO represents one order line. Price is the per-unit snapshot
// taken at order creation.
type OrderDetailDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index;not null"`
	ProductID int64 `gorm:"not null"`
	Quantity  int   `gorm:"not null"`
	Price     float64
}

// TableName specifies the database table name for order lines.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := make([]OrderDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, OrderDetailDTO{
			OrderID:   aggregate.ID(),
			ProductID: detail.ProductID(),
			Quantity:  detail.Quantity(),
			Price:     detail.Price(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		UserID:        aggregate.UserID(),
		DelivererID:   aggregate.Deliverer(),
		Address:       aggregate.Address(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus(),
		PaymentMethod: aggregate.PaymentMethod(),
		Details:       details,
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	details := make([]order.Detail, 0, len(dto.Details))
	for _, line := range dto.Details {
		detail, err := order.NewDetail(line.ProductID, line.Quantity, line.Price)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.DelivererID,
		dto.Address,
		order.Status(dto.Status),
		dto.PaymentStatus,
		dto.PaymentMethod,
		details,
	)
}
