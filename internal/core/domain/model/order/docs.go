// Package order models customer order requests and their journey through the shop.
//
// The package includes:
//   - Request: an immutable order line (identifier, product label, unit price)
//   - Ticket: the per-request state machine driven by a barista
//   - Stage: New -> Brewing -> Ready -> Settled, or New|Brewing -> Cancelled
//   - Outcome: Served, OutOfStock, Cancelled, InvalidRequest or Failed
//   - Result and Summary: the per-request answer of a batch and its aggregate
//
// Key business rules:
//   - A request needs a non-blank identifier and a non-negative price
//   - Only a Ready ticket can be settled, and only with a register outcome
//   - A ticket that reached the register can no longer be cancelled
package order
