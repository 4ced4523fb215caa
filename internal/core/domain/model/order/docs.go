// Package order provides domain entities and business logic for order management
// in the laundry back office. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, payment, and lifecycle
//   - Status: A state machine over the processing stages request -> washing ->
//     drying -> ironing -> ready -> completed, with cancelled as an absorbing state
//   - PaymentMethod / PaymentStatus: payment axis with a one-way pending -> paid transition
//   - Line / CustomItem: priced positions with unit-price snapshots and itemized tracking
//
// Key business rules:
//   - Orders must have a valid unique identifier, number, customer, and at least one line
//   - Status moves one stage forward at a time; skipping names the stage to pass first
//   - Completion requires the order to be paid
//   - The order total always equals the sum of line subtotals
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
