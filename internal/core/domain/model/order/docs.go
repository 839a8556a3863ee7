// Package order implements the Order aggregate: the immutable snapshot of a
// cart at checkout plus its delivery progress.
//
// The package includes:
//   - Order: the aggregate root owning items, total, crew assignment and status
//   - Item: a snapshotted line (menu item, quantity, unit price, line total)
//   - Status: the Pending -> Delivered state machine, stored as a boolean
//   - ChangedEvent: the fact recorded on placement, status change, crew
//     assignment and deletion
//
// Key business rules:
//   - An order has at least one item and never two items for the same menu item
//   - Order total equals the sum of item line totals
//   - A delivered order never returns to pending
package order
