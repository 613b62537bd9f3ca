// Package order contains the order aggregate and its delivery lifecycle.
//
// The aggregate root is Order, which owns its OrderDetail lines and guards
// every status change. Status implements the transition table: the closed set
// of (current, next) pairs that define legal lifecycle moves. The table is
// deliberately independent from the deliverer allow-list enforced by
// services.DeliveryPolicy; both predicates must pass for a deliverer-requested
// status change.
//
// Lifecycle:
//
//	PENDING ──> ASSIGNED_TO_DELIVERER ──> OUT_FOR_DELIVERY ──> DELIVERED ──> DELIVERY_CONFIRMED
//	                    │                        │                  │
//	                    └────────────────────────┴──────────────────┴──> FAILED
//
// DELIVERY_CONFIRMED and FAILED are terminal. Entry into
// ASSIGNED_TO_DELIVERER happens only through the assignment operation, and
// entry into DELIVERY_CONFIRMED only through proof upload.
package order
