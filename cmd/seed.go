package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/client"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/vehicle"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/ports"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
)

const (
	seedClientName = "ABC Builders"
	seedRecipeName = "M25 DEFAULT"
)

var seedVehicleNames = []string{"Truck-01", "Truck-02", "Truck-03"}

var seedRecipeSetpoints = recipe.Quantities{
	Cement: 350,
	Sand:   650,
	Agg1:   600,
	Agg2:   400,
	Water:  180,
	Admix:  2.5,
}

// Seed fills an empty database with the plant's baseline master data: the
// default fleet, a demo client, the standard mix design, and plant settings
// with the default recipe back-filled. Existing records are left untouched,
// so running it on every start is safe.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, name := range seedVehicleNames {
		if err := seedVehicle(ctx, uow.VehicleRepository(), name); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", name, err)
		}
	}

	if err := seedClient(ctx, uow.ClientRepository()); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	recipeID, err := seedRecipe(ctx, uow.RecipeRepository())
	if err != nil {
		return fmt.Errorf("seed recipe: %w", err)
	}

	if err = seedSettings(ctx, uow.SettingsRepository(), recipeID); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func seedVehicle(ctx context.Context, repo ports.VehicleRepository, name string) error {
	_, err := repo.GetByName(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := vehicle.NewVehicle(kernel.NewUUID(), name, vehicle.DefaultCapacity, "", "")
	if err != nil {
		return err
	}
	return repo.Add(ctx, aggregate)
}

func seedClient(ctx context.Context, repo ports.ClientRepository) error {
	_, err := repo.GetByName(ctx, seedClientName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := client.NewClient(kernel.NewUUID(), seedClientName, "", "", "", "")
	if err != nil {
		return err
	}
	return repo.Add(ctx, aggregate)
}

func seedRecipe(ctx context.Context, repo ports.RecipeRepository) (kernel.UUID, error) {
	existing, err := repo.GetByName(ctx, seedRecipeName)
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	aggregate, err := recipe.NewRecipe(kernel.NewUUID(), seedRecipeName, seedRecipeSetpoints)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = repo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}
	return aggregate.ID(), nil
}

func seedSettings(ctx context.Context, repo ports.SettingsRepository, recipeID kernel.UUID) error {
	aggregate, err := repo.Get(ctx)
	if err != nil {
		return err
	}

	if aggregate.DefaultRecipeID() != nil {
		return nil
	}
	if err = aggregate.SetDefaultRecipe(recipeID); err != nil {
		return err
	}
	return repo.Save(ctx, aggregate)
}
