package cmd

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/queries"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartNextRowCommandHandler() commands.StartNextRowCommandHandler {
	return commands.NewStartNextRowCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRowCommandHandler() commands.CompleteRowCommandHandler {
	var f commands.ProductionUoWFactory = FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteRowCommandHandler(f, services.NewUniformJitterSampler())
}

func (c *CompositionRoot) CreatePauseOrderCommandHandler() commands.PauseOrderCommandHandler {
	return commands.NewPauseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	return commands.NewResumeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStopOrderCommandHandler() commands.StopOrderCommandHandler {
	return commands.NewStopOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateRunCommandHandler() commands.CreateRunCommandHandler {
	var f commands.RunUoWFactory = FuncRunUoWFactory(func() commands.RunUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRunCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	return commands.NewUpdateVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateCreateRecipeCommandHandler() commands.CreateRecipeCommandHandler {
	return commands.NewCreateRecipeCommandHandler(c.recipeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRecipeCommandHandler() commands.UpdateRecipeCommandHandler {
	return commands.NewUpdateRecipeCommandHandler(c.recipeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRecipeCommandHandler() commands.DeleteRecipeCommandHandler {
	return commands.NewDeleteRecipeCommandHandler(c.recipeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRunsByOrderQueryHandler() queries.GetRunsByOrderQueryHandler {
	return queries.NewGetRunsByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadReportQueryHandler() queries.GetLoadReportQueryHandler {
	return queries.NewGetLoadReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRecipesQueryHandler() queries.GetAllRecipesQueryHandler {
	return queries.NewGetAllRecipesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) recipeUoWFactory() commands.RecipeUoWFactory {
	return FuncRecipeUoWFactory(func() commands.RecipeUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncRunUoWFactory func() commands.RunUoW

func (f FuncRunUoWFactory) Create() commands.RunUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncRecipeUoWFactory func() commands.RecipeUoW

func (f FuncRecipeUoWFactory) Create() commands.RecipeUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
