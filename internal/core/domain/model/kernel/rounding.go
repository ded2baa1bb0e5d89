package kernel

import "math"

// VolumeTolerance is the rounding tolerance used when comparing volume sums,
// matching the 3-decimal precision of stored quantities.
const VolumeTolerance = 1e-3

// Round3 rounds v to 3 decimal places. Every volume and material quantity in
// the plant is rounded with Round3 after each arithmetic step, not only at
// output, so floating-point drift cannot accumulate across many small batches.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
