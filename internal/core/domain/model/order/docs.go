// Package order provides the Order aggregate root for concrete production.
// An order decomposes its requested volume into unit-sized batch rows at
// creation time, drives each row through the pending/running/done weighing
// lifecycle, and allocates completed rows onto vehicle trips (car runs).
//
// The aggregate enforces the production invariants:
//   - Row planned volumes always sum to the order's total requested volume
//   - Row sequence numbers form the contiguous range 1..N
//   - A row belongs to at most one car run, assigned once and never reassigned
//   - The order becomes done exactly when every row is done, overriding any
//     prior status including paused or stopped
//   - Pausing or stopping rolls every running row back to pending
//
// All row-state transitions go through the aggregate so that a single
// database transaction around one aggregate load/save gives the
// serializable-per-order semantics the engine requires.
package order
