// Package order contains the Order aggregate root and its status state
// machine. The Order is the central stateful entity of the brokerage: it is
// created by a customer, priced through competitive supplier bidding, assigned
// to a driver through time-boxed offers, and driven through delivery to
// archival.
//
// All mutation of an order funnels through the methods of the aggregate, which
// enforce the lifecycle invariants:
//   - a driver can only be set when a supplier is set
//   - an accepted price can only exist from the supplier-timer state onward
//   - no status transition is ever reversed
//
// The aggregate does not know the price list; validating a customer bid
// against tier bounds is the job of the pricing domain service.
package order
