package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrUpdateRecipeCommandIsNotConstructed = errors.New(
	"UpdateRecipeCommand must be created via NewUpdateRecipeCommand constructor",
)

// UpdateRecipeCommand represents a request to change a mix design's
// name or material setpoints.
type UpdateRecipeCommand struct { //nolint:recvcheck //using for validation
	recipeID  kernel.UUID
	name      string
	setpoints recipe.Quantities

	guard guard.ConstructorGuard
}

// NewUpdateRecipeCommand creates a command to change a mix design.
func NewUpdateRecipeCommand(
	recipeID kernel.UUID, name string, setpoints recipe.Quantities,
) (UpdateRecipeCommand, error) {
	cmd := UpdateRecipeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipeID(recipeID),
		cmd.setName(name),
		cmd.setSetpoints(setpoints),
	); err != nil {
		return UpdateRecipeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRecipeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecipeCommandIsNotConstructed)
}

// RecipeID returns the target recipe's identifier.
func (c UpdateRecipeCommand) RecipeID() kernel.UUID { return c.recipeID }

// Name returns the new display name.
func (c UpdateRecipeCommand) Name() string { return c.name }

// Setpoints returns the new per-cubic-meter material setpoints.
func (c UpdateRecipeCommand) Setpoints() recipe.Quantities { return c.setpoints }

func (c *UpdateRecipeCommand) setRecipeID(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}

	c.recipeID = recipeID
	return nil
}

func (c *UpdateRecipeCommand) setName(name string) error {
	if name == "" {
		return recipe.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateRecipeCommand) setSetpoints(setpoints recipe.Quantities) error {
	if err := setpoints.Validate(); err != nil {
		return err
	}

	c.setpoints = setpoints
	return nil
}

// UpdateRecipeCommandHandler handles mix design updates.
type UpdateRecipeCommandHandler struct {
	uowFactory RecipeUoWFactory
}

// NewUpdateRecipeCommandHandler creates a handler for mix design updates.
func NewUpdateRecipeCommandHandler(uowFactory RecipeUoWFactory) UpdateRecipeCommandHandler {
	return UpdateRecipeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the mix design update command.
func (h *UpdateRecipeCommandHandler) Handle(ctx context.Context, cmd UpdateRecipeCommand) error {
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

	aggregate, err := uow.RecipeRepository().Get(ctx, cmd.RecipeID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		aggregate.Rename(cmd.Name()),
		aggregate.ReplaceSetpoints(cmd.Setpoints()),
	); err != nil {
		return err
	}

	if err = uow.RecipeRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
