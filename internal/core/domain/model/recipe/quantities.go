package recipe

import (
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
)

// Material identifies one of the six weighing channels of the plant.
type Material string

// The six material channels, in plant order.
const (
	Cement Material = "cement"
	Sand   Material = "sand"
	Agg1   Material = "agg1"
	Agg2   Material = "agg2"
	Water  Material = "water"
	Admix  Material = "admix"
)

// Materials returns the channels in their fixed plant order.
func Materials() []Material {
	return []Material{Cement, Sand, Agg1, Agg2, Water, Admix}
}

// Quantities is a value object holding one quantity per material channel.
// Depending on context it represents per-unit set-points, a scaled batch
// reading, or an accumulated total. Arithmetic methods round every channel
// to 3 decimals, keeping the plant-wide precision rule.
type Quantities struct {
	Cement float64
	Sand   float64
	Agg1   float64
	Agg2   float64
	Water  float64
	Admix  float64
}

// Validate rejects negative channel quantities.
func (q Quantities) Validate() error {
	for _, m := range Materials() {
		if q.Get(m) < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantities",
				fmt.Errorf("%s quantity %v is negative", m, q.Get(m)),
			)
		}
	}
	return nil
}

// Get returns the quantity for the given channel, 0 for an unknown channel.
func (q Quantities) Get(m Material) float64 {
	switch m {
	case Cement:
		return q.Cement
	case Sand:
		return q.Sand
	case Agg1:
		return q.Agg1
	case Agg2:
		return q.Agg2
	case Water:
		return q.Water
	case Admix:
		return q.Admix
	}
	return 0
}

// With returns a copy with the given channel set to v. Unknown channels are ignored.
func (q Quantities) With(m Material, v float64) Quantities {
	switch m {
	case Cement:
		q.Cement = v
	case Sand:
		q.Sand = v
	case Agg1:
		q.Agg1 = v
	case Agg2:
		q.Agg2 = v
	case Water:
		q.Water = v
	case Admix:
		q.Admix = v
	}
	return q
}

// Scale multiplies every channel by factor, rounding each result to 3 decimals.
// Used to convert per-unit set-points to the volume of a (possibly partial) batch row.
func (q Quantities) Scale(factor float64) Quantities {
	out := Quantities{}
	for _, m := range Materials() {
		out = out.With(m, kernel.Round3(q.Get(m)*factor))
	}
	return out
}

// Add returns the channel-wise sum of q and other, rounded to 3 decimals.
func (q Quantities) Add(other Quantities) Quantities {
	out := Quantities{}
	for _, m := range Materials() {
		out = out.With(m, kernel.Round3(q.Get(m)+other.Get(m)))
	}
	return out
}

// Sub returns the channel-wise difference q-other, rounded to 3 decimals.
func (q Quantities) Sub(other Quantities) Quantities {
	out := Quantities{}
	for _, m := range Materials() {
		out = out.With(m, kernel.Round3(q.Get(m)-other.Get(m)))
	}
	return out
}
