// Package customer contains the customer aggregate for the laundry back office.
//
// Customers come in two tiers. Regular customers pay the standard price for
// every service. Members carry a prepaid deposit balance, may pay for orders
// by balance deduction, and receive the member price on services that define
// one.
//
// The aggregate enforces:
//   - Names are at least two characters long
//   - Only members hold a balance; balance operations on regulars are rejected
//   - Deductions never drive the balance negative
package customer
