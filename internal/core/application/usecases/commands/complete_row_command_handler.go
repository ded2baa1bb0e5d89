package commands

import (
	"context"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"
)

// CompleteRowResult reports the recorded reading and the order status after
// completion. AlreadyDone is set when the row had completed earlier; the
// stored reading is returned unchanged in that case.
type CompleteRowResult struct {
	Actual      recipe.Quantities
	OrderStatus order.Status
	AlreadyDone bool
}

// CompleteRowCommandHandler handles batch row completion. The actual reading
// is sampled from the recipe setpoints within the configured tolerance band,
// scaled to the row volume. Completing the last open row closes the order.
type CompleteRowCommandHandler struct {
	uowFactory ProductionUoWFactory
	sampler    services.ActualSampler
}

// NewCompleteRowCommandHandler creates a handler for row completion operations.
func NewCompleteRowCommandHandler(
	uowFactory ProductionUoWFactory, sampler services.ActualSampler,
) CompleteRowCommandHandler {
	return CompleteRowCommandHandler{
		uowFactory: uowFactory,
		sampler:    sampler,
	}
}

// Handle processes the row completion command.
// Re-completion of a done row is a no-op that reports the stored reading.
func (h *CompleteRowCommandHandler) Handle(ctx context.Context, cmd CompleteRowCommand) (CompleteRowResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteRowResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteRowResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return CompleteRowResult{}, err
	}

	row, err := aggregate.Row(cmd.RowID())
	if err != nil {
		return CompleteRowResult{}, err
	}

	if row.State() == order.RowDone {
		// Idempotent: report the stored reading without touching the aggregate
		return CompleteRowResult{
			Actual:      *row.Actual(),
			OrderStatus: aggregate.Status(),
			AlreadyDone: true,
		}, nil
	}

	rec, err := uow.RecipeRepository().Get(ctx, aggregate.RecipeID())
	if err != nil {
		return CompleteRowResult{}, err
	}

	plantSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return CompleteRowResult{}, err
	}

	scale := row.PlannedVolume() / plantSettings.MixerCapacity()
	actual, err := h.sampler.Sample(rec.Setpoints(), plantSettings.TolerancePct(), scale)
	if err != nil {
		return CompleteRowResult{}, err
	}

	if _, err = aggregate.CompleteRow(cmd.RowID(), actual, time.Now().UTC()); err != nil {
		return CompleteRowResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return CompleteRowResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteRowResult{}, err
	}

	return CompleteRowResult{
		Actual:      actual,
		OrderStatus: aggregate.Status(),
	}, nil
}
