// Package recipe provides the Recipe aggregate: a named concrete mix defined
// by per-unit-volume set-point quantities for the six material channels of
// the batching plant (cement, sand, two coarse aggregates, water, admixture).
//
// Key business rules:
//   - A recipe carries exactly six channel quantities, none negative
//   - Updating set-points replaces all six channels atomically; there is no
//     partial-channel merge
//   - Orders capture the recipe reference at creation time, so later recipe
//     edits never retroactively change an order's set-points
package recipe
