package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand represents a request to change plant-wide settings.
// A nil defaultRecipeID clears the default recipe.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	tolerancePct    float64
	mixerCapacity   float64
	defaultRecipeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a command to change plant settings.
func NewUpdateSettingsCommand(
	tolerancePct, mixerCapacity float64, defaultRecipeID *kernel.UUID,
) (UpdateSettingsCommand, error) {
	cmd := UpdateSettingsCommand{
		tolerancePct:  tolerancePct,
		mixerCapacity: mixerCapacity,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setDefaultRecipeID(defaultRecipeID); err != nil {
		return UpdateSettingsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// TolerancePct returns the new dosing tolerance in percent.
func (c UpdateSettingsCommand) TolerancePct() float64 { return c.tolerancePct }

// MixerCapacity returns the new mixer batch size in cubic meters.
func (c UpdateSettingsCommand) MixerCapacity() float64 { return c.mixerCapacity }

// DefaultRecipeID returns the new default recipe, or nil to clear it.
func (c UpdateSettingsCommand) DefaultRecipeID() *kernel.UUID { return c.defaultRecipeID }

func (c *UpdateSettingsCommand) setDefaultRecipeID(defaultRecipeID *kernel.UUID) error {
	if defaultRecipeID == nil {
		return nil
	}

	if err := defaultRecipeID.Validate(); err != nil {
		return err
	}

	c.defaultRecipeID = defaultRecipeID
	return nil
}

// UpdateSettingsCommandHandler handles plant settings updates. The default
// recipe, when set, must reference an existing mix design.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateSettingsCommandHandler creates a handler for settings updates.
func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the settings update command.
func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}

	if err = errors.Join(
		aggregate.ChangeTolerancePct(cmd.TolerancePct()),
		aggregate.ChangeMixerCapacity(cmd.MixerCapacity()),
	); err != nil {
		return err
	}

	if cmd.DefaultRecipeID() != nil {
		if _, err = uow.RecipeRepository().Get(ctx, *cmd.DefaultRecipeID()); err != nil {
			return err
		}

		if err = aggregate.SetDefaultRecipe(*cmd.DefaultRecipeID()); err != nil {
			return err
		}
	} else {
		aggregate.ClearDefaultRecipe()
	}

	if err = uow.SettingsRepository().Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
