package commands

import (
	"context"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
)

// CreateRunResult reports the allocated run.
type CreateRunResult struct {
	RunID       kernel.UUID
	LoadSeq     int
	RowStartSeq int
	RowEndSeq   int
	Volume      float64
}

// CreateRunCommandHandler handles delivery run allocation. The hauling
// vehicle must exist; the order is locked so concurrent allocations never
// claim the same rows twice.
type CreateRunCommandHandler struct {
	uowFactory RunUoWFactory
}

// NewCreateRunCommandHandler creates a handler for run allocation operations.
func NewCreateRunCommandHandler(uowFactory RunUoWFactory) CreateRunCommandHandler {
	return CreateRunCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the run allocation command.
func (h *CreateRunCommandHandler) Handle(ctx context.Context, cmd CreateRunCommand) (CreateRunResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRunResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateRunResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return CreateRunResult{}, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return CreateRunResult{}, err
	}

	run, err := aggregate.AllocateRun(
		cmd.RunID(), cmd.VehicleID(), cmd.RowRange(), cmd.Note(), time.Now().UTC(),
	)
	if err != nil {
		return CreateRunResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return CreateRunResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateRunResult{}, err
	}

	return CreateRunResult{
		RunID:       run.ID(),
		LoadSeq:     run.LoadSeq(),
		RowStartSeq: run.RowStartSeq(),
		RowEndSeq:   run.RowEndSeq(),
		Volume:      run.Volume(),
	}, nil
}
