// Package services contains domain services that coordinate rules spanning
// more than one aggregate or actor.
//
// DeliveryPolicy governs what a deliverer is permitted to request: the
// status allow-list and the order-ownership check. It is intentionally kept
// separate from the transition table on order.Status: the allow-list limits
// what may be requested, the table limits what is reachable. Both checks
// must pass independently.
package services
