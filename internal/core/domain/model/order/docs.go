// Package order provides the order aggregate and the order and order item
// status machines.
//
// The package includes:
//   - Status and ItemStatus: closed enums with their immutable transition tables
//   - Order and Item: the aggregate persisted by the order repository
//   - Payload: the candidate order evaluated by the business rules before persistence
//   - ItemSnapshot: the read model of an order item used by rule evaluators
//
// Key business rules:
//   - Order status follows draft -> pending -> confirmed -> processing -> shipped -> delivered -> completed
//   - processing orders may be put on hold and resumed; any pre-shipment status may be cancelled
//   - completed and cancelled are terminal
//   - changing a status to itself is always allowed
package order
