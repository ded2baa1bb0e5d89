package order

import (
	"fmt"
	"math"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
)

// PlanVolumes partitions a total requested volume into an ordered sequence of
// batch takes of at most unitSize each. Each take and the running remainder
// are rounded to 3 decimals per step, which guarantees the takes sum exactly
// to the (rounded) total and that only the final take can be a fractional
// remainder below unitSize.
//
// A non-positive total or unit size is a validation error: a degenerate or
// empty order is not a valid state.
func PlanVolumes(totalVolume, unitSize float64) ([]float64, error) {
	if totalVolume <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalVolume", fmt.Errorf("%v is not greater than 0", totalVolume))
	}
	if unitSize <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"unitSize", fmt.Errorf("%v is not greater than 0", unitSize))
	}

	remaining := kernel.Round3(totalVolume)
	var takes []float64
	for remaining > 0 {
		take := kernel.Round3(math.Min(unitSize, remaining))
		takes = append(takes, take)
		remaining = kernel.Round3(remaining - take)
	}

	return takes, nil
}
