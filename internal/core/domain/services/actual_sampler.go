package services

import (
	"math/rand/v2"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
)

// ActualSampler produces the actual batch weight reading recorded when a
// production row completes. Implementations emulate the plant weighbridge:
// given the recipe setpoints, a tolerance band and the row's volume scale,
// they report what each material channel actually weighed in.
type ActualSampler interface {
	// Sample returns the per-channel reading for one completed row.
	//
	// Parameters:
	//   - setpoints: recipe setpoints per one unit of mix
	//   - tolerancePct: allowed deviation band in percent (non-negative)
	//   - scale: row volume divided by the unit size, applied after jitter
	Sample(setpoints recipe.Quantities, tolerancePct, scale float64) (recipe.Quantities, error)
}

// UniformJitterSampler is the default ActualSampler. Each channel is jittered
// independently with a uniform deviation in [-tolerancePct, +tolerancePct]
// percent of its setpoint, rounded to gram precision, then scaled to the row
// volume and rounded again. The two-step rounding mirrors how the plant PLC
// reports weights.
type UniformJitterSampler struct {
	rnd *rand.Rand
}

// NewUniformJitterSampler creates a sampler backed by the shared global
// random source.
func NewUniformJitterSampler() UniformJitterSampler {
	return UniformJitterSampler{}
}

// NewSeededJitterSampler creates a sampler with a deterministic source.
// Intended for tests that need reproducible readings.
func NewSeededJitterSampler(seed uint64) UniformJitterSampler {
	return UniformJitterSampler{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// Sample implements ActualSampler.
func (s UniformJitterSampler) Sample(setpoints recipe.Quantities, tolerancePct, scale float64) (recipe.Quantities, error) {
	if tolerancePct < 0 {
		return recipe.Quantities{}, errs.NewValueIsInvalidError("tolerancePct")
	}
	if scale <= 0 {
		return recipe.Quantities{}, errs.NewValueIsInvalidError("scale")
	}

	out := setpoints
	for _, m := range recipe.Materials() {
		v := setpoints.Get(m)
		jitter := s.uniform(-tolerancePct, tolerancePct) / 100.0
		reading := kernel.Round3(v * (1.0 + jitter))
		out = out.With(m, kernel.Round3(reading*scale))
	}
	return out, nil
}

func (s UniformJitterSampler) uniform(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	if s.rnd != nil {
		return lo + s.rnd.Float64()*(hi-lo)
	}
	return lo + rand.Float64()*(hi-lo)
}
