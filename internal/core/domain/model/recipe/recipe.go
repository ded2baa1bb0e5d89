package recipe

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating or renaming a recipe with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRecipeIsNotConstructed is returned when using an improperly initialized Recipe.
	ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")
)

// Recipe is the aggregate root for a named concrete mix. It holds the
// per-unit-volume set-point quantity for each of the six material channels.
//
// Set-points are replaced as a whole: ReplaceSetpoints swaps all six channel
// quantities atomically. Whether a recipe may be deleted is decided by the
// application layer, which forbids deletion while any order references it.
type Recipe struct {
	id        kernel.UUID
	name      string
	setpoints Quantities
	guard     guard.ConstructorGuard
}

// NewRecipe creates a Recipe with the given identity, unique name, and
// per-unit set-points. All six channel quantities must be non-negative.
func NewRecipe(id kernel.UUID, name string, setpoints Quantities) (*Recipe, error) {
	r := &Recipe{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setSetpoints(setpoints),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipe reconstructs a Recipe from persistence.
func RestoreRecipe(id kernel.UUID, name string, setpoints Quantities) (*Recipe, error) {
	return NewRecipe(id, name, setpoints)
}

// Validate ensures the Recipe was built via NewRecipe.
func (r *Recipe) Validate() error {
	if r == nil {
		return ErrRecipeIsNotConstructed
	}
	return r.guard.Validate(ErrRecipeIsNotConstructed)
}

// IsEqual compares recipes by identity.
func (r *Recipe) IsEqual(other *Recipe) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipe identity.
func (r *Recipe) ID() kernel.UUID {
	return r.id
}

// Name returns the unique mix name, e.g. "M25 DEFAULT".
func (r *Recipe) Name() string {
	return r.name
}

// Setpoints returns the per-unit-volume quantities for all six channels.
func (r *Recipe) Setpoints() Quantities {
	return r.setpoints
}

// Rename changes the recipe name. The name must be non-empty; uniqueness is
// enforced by the persistence layer.
func (r *Recipe) Rename(name string) error {
	return r.setName(name)
}

// ReplaceSetpoints atomically replaces all six channel quantities.
// There is no partial-channel merge: callers always supply the full set.
func (r *Recipe) ReplaceSetpoints(setpoints Quantities) error {
	return r.setSetpoints(setpoints)
}

func (r *Recipe) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipe) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Recipe) setSetpoints(setpoints Quantities) error {
	if err := setpoints.Validate(); err != nil {
		return err
	}
	r.setpoints = setpoints
	return nil
}
