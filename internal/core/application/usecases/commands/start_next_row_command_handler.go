package commands

import (
	"context"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
)

// StartNextRowResult identifies the row that entered the running state.
type StartNextRowResult struct {
	RowID kernel.UUID
	SeqNo int
}

// StartNextRowCommandHandler handles starting the next pending batch row.
// The order is locked for the duration of the transaction so concurrent
// start requests serialize and each row starts exactly once.
type StartNextRowCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartNextRowCommandHandler creates a handler for row start operations.
func NewStartNextRowCommandHandler(uowFactory OrderUoWFactory) StartNextRowCommandHandler {
	return StartNextRowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the row start command.
func (h *StartNextRowCommandHandler) Handle(ctx context.Context, cmd StartNextRowCommand) (StartNextRowResult, error) {
	if err := cmd.Validate(); err != nil {
		return StartNextRowResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StartNextRowResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return StartNextRowResult{}, err
	}

	row, err := aggregate.StartNextRow(time.Now().UTC())
	if err != nil {
		return StartNextRowResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return StartNextRowResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StartNextRowResult{}, err
	}

	return StartNextRowResult{RowID: row.ID(), SeqNo: row.SeqNo()}, nil
}
