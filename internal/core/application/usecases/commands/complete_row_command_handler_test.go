package commands_test

import (
	"testing"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productionOrder plans a two-row order and starts the first row.
func productionOrder(t *testing.T) (*order.Order, *order.Row) {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		2.0, 1.0, time.Now().UTC(),
	)
	require.NoError(t, err)
	row, err := o.StartNextRow(time.Now().UTC())
	require.NoError(t, err)
	return o, row
}

func TestCompleteRowCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, row := productionOrder(t)
	cmd, err := commands.NewCompleteRowCommand(aggregate.ID(), row.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	recipeRepo := new(MockRecipeRepository)
	settingsRepo := new(MockSettingsRepository)
	rec := testRecipe(t)
	plantSettings := testSettings(t)

	uow := new(MockProductionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RecipeRepository").Return(recipeRepo).Once(),
		recipeRepo.On("Get", mock.Anything, aggregate.RecipeID()).Return(rec, nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(plantSettings, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRowCommandHandler(factory, services.NewSeededJitterSampler(7))
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.AlreadyDone)
	assert.Equal(t, order.Running, result.OrderStatus)
	// Reading stays inside the 2.5% tolerance band around the setpoints
	assert.InDelta(t, 350, result.Actual.Cement, 350*0.025+0.001)
	assert.InDelta(t, 180, result.Actual.Water, 180*0.025+0.001)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteRowCommandHandler_Handle_AlreadyDone(t *testing.T) {
	ctx := t.Context()
	aggregate, row := productionOrder(t)
	stored := recipe.Quantities{Cement: 351.2, Sand: 648.1, Agg1: 601.4, Agg2: 399.2, Water: 180.9, Admix: 2.49}
	_, err := aggregate.CompleteRow(row.ID(), stored, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCompleteRowCommand(aggregate.ID(), row.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockProductionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRowCommandHandler(factory, services.NewSeededJitterSampler(7))
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.AlreadyDone)
	assert.Equal(t, stored, result.Actual)
	// Nothing was persisted
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteRowCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteRowCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockProductionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteRowCommandHandler(factory, services.NewSeededJitterSampler(7))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
