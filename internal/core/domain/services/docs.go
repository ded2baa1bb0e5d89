// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the batching plant system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ActualSampler: A domain service producing simulated batch weight readings
//   - OrderSummarizer: A domain service aggregating per-order production totals
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
