// Package kernel holds the value objects shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: identifier value object over github.com/google/uuid
//   - Money: exact two-decimal amount over github.com/shopspring/decimal
//   - DomainEvent: the contract for facts recorded by aggregates and relayed
//     through the transactional outbox
//
// Values are immutable and safe for concurrent use.
package kernel
