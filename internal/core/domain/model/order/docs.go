// Package order provides the order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owning the priced item collection, the
//     computed total, and the status state machine
//   - OrderItem: a single priced line with positivity invariants
//   - Status: the fixed lifecycle sequence Pending -> Received -> Preparing ->
//     Ready -> Completed, with Cancelled as an escape from any non-terminal
//     state
//
// Key business rules:
//   - orders always contain at least one item
//   - the total always equals the sum of price × quantity over items, rounded
//     to cents
//   - item prices come from the stock snapshot taken at validation time, never
//     from the caller
//   - Completed and Cancelled are terminal; every other transition must step
//     to the immediate successor in the sequence
package order
