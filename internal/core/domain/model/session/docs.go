// Package session implements the order composition engine: the multi-step
// counter workflow that accumulates a customer, selected services with their
// attributes, and payment details, and finally produces an Order aggregate.
//
// Session is an immutable value. Every mutating operation returns a new
// snapshot and leaves the receiver untouched; derived totals are recomputed
// on every mutation and are never an independent source of truth. This keeps
// the engine trivially unit-testable and rules out desync between the
// selection set and its per-service attributes: a service is selected exactly
// when its identifier is present in the selection map.
//
// The wizard has four steps: customer, services, review, payment. Forward
// progression is gated by per-step validation; backward navigation is always
// permitted. Rejected operations surface a human-readable message via
// Session.Error instead of panicking or silently ignoring input.
package session
