// Package settings provides the process-wide plant tunables: the simulated
// weighing tolerance, the nominal mixer batch size, and the default recipe
// reference. Settings is a singleton record read at the start of each engine
// operation that needs it and passed in explicitly, keeping engine
// transitions pure and testable.
package settings

import (
	"errors"
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

const (
	// DefaultTolerancePct is the default actual-vs-planned variance percentage.
	DefaultTolerancePct = 2.5
	// DefaultMixerCapacity is the default nominal batch unit size in volume units.
	DefaultMixerCapacity = 1.000
)

// ErrSettingsIsNotConstructed is returned when using improperly initialized Settings.
var ErrSettingsIsNotConstructed = errors.New("Settings must be created via NewSettings constructor")

// Settings is the singleton plant configuration aggregate.
// The default recipe reference stays nil until the first recipe exists and
// is back-filled once at seed time.
type Settings struct {
	id              kernel.UUID
	tolerancePct    float64
	mixerCapacity   float64
	defaultRecipeID *kernel.UUID
	guard           guard.ConstructorGuard
}

// NewSettings creates the settings record with plant defaults.
func NewSettings(id kernel.UUID) (*Settings, error) {
	s := &Settings{
		tolerancePct:  DefaultTolerancePct,
		mixerCapacity: DefaultMixerCapacity,
		guard:         guard.NewConstructorGuard(),
	}

	if err := s.setID(id); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSettings reconstructs Settings from persistence.
func RestoreSettings(
	id kernel.UUID,
	tolerancePct, mixerCapacity float64,
	defaultRecipeID *kernel.UUID,
) (*Settings, error) {
	s, err := NewSettings(id)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		s.ChangeTolerancePct(tolerancePct),
		s.ChangeMixerCapacity(mixerCapacity),
	); err != nil {
		return nil, err
	}

	if defaultRecipeID != nil {
		if err = s.SetDefaultRecipe(*defaultRecipeID); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Validate ensures the Settings were built via NewSettings.
func (s *Settings) Validate() error {
	if s == nil {
		return ErrSettingsIsNotConstructed
	}
	return s.guard.Validate(ErrSettingsIsNotConstructed)
}

// ID returns the settings record identity.
func (s *Settings) ID() kernel.UUID { return s.id }

// TolerancePct returns the simulated weighing tolerance percentage.
func (s *Settings) TolerancePct() float64 { return s.tolerancePct }

// MixerCapacity returns the nominal batch unit size in volume units.
func (s *Settings) MixerCapacity() float64 { return s.mixerCapacity }

// DefaultRecipeID returns the default recipe reference, nil when unset.
func (s *Settings) DefaultRecipeID() *kernel.UUID { return s.defaultRecipeID }

// ChangeTolerancePct updates the tolerance percentage. Negative values are rejected.
func (s *Settings) ChangeTolerancePct(pct float64) error {
	if pct < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"tolerancePct", fmt.Errorf("%v is negative", pct))
	}
	s.tolerancePct = pct
	return nil
}

// ChangeMixerCapacity updates the nominal batch unit size. Must be positive.
func (s *Settings) ChangeMixerCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mixerCapacity", fmt.Errorf("%v is not greater than 0", capacity))
	}
	s.mixerCapacity = capacity
	return nil
}

// SetDefaultRecipe points the default recipe reference at the given recipe.
// Existence of the recipe is checked by the application layer.
func (s *Settings) SetDefaultRecipe(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}
	s.defaultRecipeID = &recipeID
	return nil
}

// ClearDefaultRecipe removes the default recipe reference.
func (s *Settings) ClearDefaultRecipe() {
	s.defaultRecipeID = nil
}

func (s *Settings) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}
