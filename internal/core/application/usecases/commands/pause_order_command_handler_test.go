package commands_test

import (
	"testing"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPauseOrderCommandHandler_Handle_PausesRunningOrder(t *testing.T) {
	ctx := t.Context()
	aggregate, row := productionOrder(t)
	cmd, err := commands.NewPauseOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPauseOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Paused, result.Status)
	assert.True(t, result.Changed)
	// The running row rolled back to pending
	assert.Equal(t, order.RowPending, row.State())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPauseOrderCommandHandler_Handle_NoOpOnDoneOrder(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		1.0, 1.0, time.Now().UTC(),
	)
	require.NoError(t, err)
	row, err := aggregate.StartNextRow(time.Now().UTC())
	require.NoError(t, err)
	_, err = aggregate.CompleteRow(row.ID(), recipe.Quantities{Cement: 350}, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, order.Done, aggregate.Status())

	cmd, err := commands.NewPauseOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPauseOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Done, result.Status)
	assert.False(t, result.Changed)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
