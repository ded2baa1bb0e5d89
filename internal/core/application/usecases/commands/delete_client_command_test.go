package commands_test

import (
	"testing"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewDeleteClientCommand(clientID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	uow := new(MockClientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExistsForClient", mock.Anything, clientID).Return(false, nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Delete", mock.Anything, clientID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteClientCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	clientRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteClientCommandHandler_Handle_BlockedByOrders(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewDeleteClientCommand(clientID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockClientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ExistsForClient", mock.Anything, clientID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteClientCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClientHasOrders)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertNotCalled(t, "ClientRepository")
}

func TestNewDeleteClientCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteClientCommand(kernel.UUID{})
	require.Error(t, err)
}
