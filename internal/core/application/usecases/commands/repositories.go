// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Handlers depend on the narrowest interface that covers the repositories
// they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RecipeRepoFactory provides access to recipe repository within a transaction.
	RecipeRepoFactory interface {
		RecipeRepository() ports.RecipeRepository
	}

	// VehicleRepoFactory provides access to vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ClientRepoFactory provides access to client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// SettingsRepoFactory provides access to the plant settings row within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by production lifecycle commands that modify a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductionUoW manages transactions for row completion: the order plus
	// the recipe setpoints and plant settings needed to record a reading.
	ProductionUoW interface {
		TxManager
		OrderRepoFactory
		RecipeRepoFactory
		SettingsRepoFactory
	}

	// ProductionUoWFactory creates new production unit of work instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// CreateOrderUoW manages transactions for order creation, which must
	// verify the referenced client and recipe and read the mixer capacity.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		RecipeRepoFactory
		SettingsRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// RunUoW manages transactions for car run allocation, which must verify
	// the hauling vehicle exists.
	RunUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
	}

	// RunUoWFactory creates new run allocation unit of work instances.
	RunUoWFactory interface {
		Create() RunUoW
	}

	// RecipeUoW manages transactions for recipe maintenance. The order
	// repository backs the referential check on delete.
	RecipeUoW interface {
		TxManager
		RecipeRepoFactory
		OrderRepoFactory
	}

	// RecipeUoWFactory creates new recipe unit of work instances.
	RecipeUoWFactory interface {
		Create() RecipeUoW
	}

	// VehicleUoW manages transactions for vehicle maintenance.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
		OrderRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// ClientUoW manages transactions for client maintenance.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
		OrderRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// SettingsUoW manages transactions for plant settings updates. The recipe
	// repository backs validation of the default recipe reference.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
		RecipeRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
