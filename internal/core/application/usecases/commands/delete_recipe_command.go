package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	ErrDeleteRecipeCommandIsNotConstructed = errors.New(
		"DeleteRecipeCommand must be created via NewDeleteRecipeCommand constructor",
	)
	// ErrRecipeInUse blocks deleting a recipe still referenced by orders.
	ErrRecipeInUse = fmt.Errorf(
		"%w: recipe is used by orders and cannot be deleted", errs.ErrValueIsInvalid,
	)
)

// DeleteRecipeCommand represents a request to remove a mix design.
type DeleteRecipeCommand struct { //nolint:recvcheck //using for validation
	recipeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRecipeCommand creates a command to remove a mix design.
func NewDeleteRecipeCommand(recipeID kernel.UUID) (DeleteRecipeCommand, error) {
	cmd := DeleteRecipeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRecipeID(recipeID); err != nil {
		return DeleteRecipeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRecipeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRecipeCommandIsNotConstructed)
}

// RecipeID returns the target recipe's identifier.
func (c DeleteRecipeCommand) RecipeID() kernel.UUID { return c.recipeID }

func (c *DeleteRecipeCommand) setRecipeID(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}

	c.recipeID = recipeID
	return nil
}

// DeleteRecipeCommandHandler handles mix design removal. Recipes referenced
// by any order cannot be deleted.
type DeleteRecipeCommandHandler struct {
	uowFactory RecipeUoWFactory
}

// NewDeleteRecipeCommandHandler creates a handler for mix design removal.
func NewDeleteRecipeCommandHandler(uowFactory RecipeUoWFactory) DeleteRecipeCommandHandler {
	return DeleteRecipeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the mix design removal command.
func (h *DeleteRecipeCommandHandler) Handle(ctx context.Context, cmd DeleteRecipeCommand) error {
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

	referenced, err := uow.OrderRepository().ExistsForRecipe(ctx, cmd.RecipeID())
	if err != nil {
		return err
	}
	if referenced {
		return ErrRecipeInUse
	}

	if err = uow.RecipeRepository().Delete(ctx, cmd.RecipeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
