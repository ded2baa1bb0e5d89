package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrCreateRecipeCommandIsNotConstructed = errors.New(
	"CreateRecipeCommand must be created via NewCreateRecipeCommand constructor",
)

// CreateRecipeCommand represents a request to register a new mix design.
type CreateRecipeCommand struct { //nolint:recvcheck //using for validation
	recipeID  kernel.UUID
	name      string
	setpoints recipe.Quantities

	guard guard.ConstructorGuard
}

// NewCreateRecipeCommand creates a command to register a mix design.
func NewCreateRecipeCommand(
	recipeID kernel.UUID, name string, setpoints recipe.Quantities,
) (CreateRecipeCommand, error) {
	cmd := CreateRecipeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipeID(recipeID),
		cmd.setName(name),
		cmd.setSetpoints(setpoints),
	); err != nil {
		return CreateRecipeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipeCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipeCommandIsNotConstructed)
}

// RecipeID returns the identifier for the new recipe.
func (c CreateRecipeCommand) RecipeID() kernel.UUID { return c.recipeID }

// Name returns the recipe's display name.
func (c CreateRecipeCommand) Name() string { return c.name }

// Setpoints returns the per-cubic-meter material setpoints.
func (c CreateRecipeCommand) Setpoints() recipe.Quantities { return c.setpoints }

func (c *CreateRecipeCommand) setRecipeID(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}

	c.recipeID = recipeID
	return nil
}

func (c *CreateRecipeCommand) setName(name string) error {
	if name == "" {
		return recipe.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRecipeCommand) setSetpoints(setpoints recipe.Quantities) error {
	if err := setpoints.Validate(); err != nil {
		return err
	}

	c.setpoints = setpoints
	return nil
}

// CreateRecipeCommandHandler handles mix design registration.
type CreateRecipeCommandHandler struct {
	uowFactory RecipeUoWFactory
}

// NewCreateRecipeCommandHandler creates a handler for mix design registration.
func NewCreateRecipeCommandHandler(uowFactory RecipeUoWFactory) CreateRecipeCommandHandler {
	return CreateRecipeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the mix design registration command.
func (h *CreateRecipeCommandHandler) Handle(ctx context.Context, cmd CreateRecipeCommand) error {
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

	aggregate, err := recipe.NewRecipe(cmd.RecipeID(), cmd.Name(), cmd.Setpoints())
	if err != nil {
		return err
	}

	if err = uow.RecipeRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
