// Package kernel contains shared domain primitives used across all aggregates:
// the UUID identity value object and the 3-decimal rounding rule applied to
// every volume and material quantity in the batching plant.
package kernel
