package services

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
)

// LoadReportRow is one production row as it appears on a delivery load
// report: the scaled set weights next to the recorded actuals and their
// per-channel deltas. Actual and Delta are nil for rows that have not
// completed yet.
type LoadReportRow struct {
	SeqNo         int
	PlannedVolume float64
	State         order.RowState
	Set           recipe.Quantities
	Actual        *recipe.Quantities
	Delta         *recipe.Quantities
}

// LoadReportTotals accumulates the report rows. Set totals sum the per-row
// rounded set weights; actual and delta totals only include completed rows.
type LoadReportTotals struct {
	PlannedVolume float64
	Set           recipe.Quantities
	Actual        recipe.Quantities
	Delta         recipe.Quantities
}

// LoadReportBuilder is a domain service that renders the row-by-row material
// breakdown used by delivery load reports, optionally narrowed to the rows
// hauled by a single vehicle.
type LoadReportBuilder struct{}

// NewLoadReportBuilder creates a new LoadReportBuilder instance.
func NewLoadReportBuilder() LoadReportBuilder {
	return LoadReportBuilder{}
}

// Build produces the report rows and totals for an order against the given
// recipe setpoints. When vehicleID is non-nil only rows assigned to that
// vehicle's runs are included.
func (LoadReportBuilder) Build(o *order.Order, setpoints recipe.Quantities, vehicleID *kernel.UUID) ([]LoadReportRow, LoadReportTotals, error) {
	if err := o.Validate(); err != nil {
		return nil, LoadReportTotals{}, err
	}

	var runFilter map[string]bool
	if vehicleID != nil {
		runFilter = make(map[string]bool)
		for _, run := range o.Runs() {
			if run.VehicleID().IsEqual(*vehicleID) {
				runFilter[run.ID().String()] = true
			}
		}
	}

	rows := make([]LoadReportRow, 0, len(o.Rows()))
	var totals LoadReportTotals
	for _, row := range o.Rows() {
		if runFilter != nil {
			if row.CarRunID() == nil || !runFilter[row.CarRunID().String()] {
				continue
			}
		}

		view := LoadReportRow{
			SeqNo:         row.SeqNo(),
			PlannedVolume: row.PlannedVolume(),
			State:         row.State(),
		}
		for _, m := range recipe.Materials() {
			sv := kernel.Round3(setpoints.Get(m) * row.PlannedVolume())
			view.Set = view.Set.With(m, sv)
			totals.Set = totals.Set.With(m, totals.Set.Get(m)+sv)
		}
		if actual := row.Actual(); actual != nil {
			view.Actual = actual
			var delta recipe.Quantities
			for _, m := range recipe.Materials() {
				dv := kernel.Round3(actual.Get(m) - view.Set.Get(m))
				delta = delta.With(m, dv)
				totals.Actual = totals.Actual.With(m, totals.Actual.Get(m)+actual.Get(m))
				totals.Delta = totals.Delta.With(m, totals.Delta.Get(m)+dv)
			}
			view.Delta = &delta
		}
		totals.PlannedVolume = kernel.Round3(totals.PlannedVolume + row.PlannedVolume())
		rows = append(rows, view)
	}

	for _, m := range recipe.Materials() {
		totals.Set = totals.Set.With(m, kernel.Round3(totals.Set.Get(m)))
		totals.Actual = totals.Actual.With(m, kernel.Round3(totals.Actual.Get(m)))
		totals.Delta = totals.Delta.With(m, kernel.Round3(totals.Delta.Get(m)))
	}
	return rows, totals, nil
}
