// Package order contains the purchase order aggregate.
//
// Order is the aggregate root; it exclusively owns its line Items and enforces
// the item invariants (positive unit price and quantity) whenever items are
// attached, both at creation and when the item set is replaced. Status models
// the order's persisted lifecycle state plus the response-only codes used by
// status-change resolution, including the CODIGO_PEDIDO_INVALIDO sentinel for
// unknown order identifiers.
package order
