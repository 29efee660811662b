// Package workorder provides the manufacturing work order aggregate and its
// status machine.
//
// A work order asks one manufacturer to produce a quantity of a single order
// item. Status flow:
//
//	pending -> queued -> in_production -> quality_check -> [packaging] -> completed -> shipped
//
// with rework loops between in_production/quality_check, on_hold pauses, and
// cancellation from any status before completion. shipped and cancelled are
// terminal.
package workorder
