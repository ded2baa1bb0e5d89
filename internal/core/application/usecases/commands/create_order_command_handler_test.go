package commands_test

import (
	"errors"
	"testing"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/client"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/settings"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), "ABC Builders", "01711000000", "abc@example.com", "Gulshan", "Site 7")
	require.NoError(t, err)
	return c
}

func testRecipe(t *testing.T) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(kernel.NewUUID(), "M25 DEFAULT", recipe.Quantities{
		Cement: 350, Sand: 650, Agg1: 600, Agg2: 400, Water: 180, Admix: 2.5,
	})
	require.NoError(t, err)
	return r
}

func testSettings(t *testing.T) *settings.Settings {
	t.Helper()
	s, err := settings.NewSettings(kernel.NewUUID())
	require.NoError(t, err)
	return s
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2.5)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	recipeRepo := new(MockRecipeRepository)
	settingsRepo := new(MockSettingsRepository)

	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, cmd.ClientID()).Return(testClient(t), nil).Once(),
		uow.On("RecipeRepository").Return(recipeRepo).Once(),
		recipeRepo.On("Get", mock.Anything, cmd.RecipeID()).Return(testRecipe(t), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(testSettings(t), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// 2.5 m3 at 1.0 m3 per batch plans three rows
	assert.Equal(t, 3, result.RowsPlanned)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ClientNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2.5)
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, cmd.ClientID()).
			Return(nil, errs.NewObjectNotFoundError("client", cmd.ClientID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2.5)
	require.NoError(t, err)

	uow := new(MockCreateOrderUoW)
	factory := new(MockCreateOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2.5)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	recipeRepo := new(MockRecipeRepository)
	settingsRepo := new(MockSettingsRepository)

	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", mock.Anything, cmd.ClientID()).Return(testClient(t), nil).Once(),
		uow.On("RecipeRepository").Return(recipeRepo).Once(),
		recipeRepo.On("Get", mock.Anything, cmd.RecipeID()).Return(testRecipe(t), nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", mock.Anything).Return(testSettings(t), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
