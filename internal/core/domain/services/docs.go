// Package services holds domain services that span several aggregates.
//
//   - AccessPolicy: maps every use case to the roles allowed to run it
//   - Checkout: converts cart lines into an order snapshot
//
// Both are stateless and free of I/O; use cases load the aggregates, call the
// service and persist the result inside one unit of work.
package services
