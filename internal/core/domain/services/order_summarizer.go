package services

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
)

// Summary holds per-order production totals over completed rows.
//
// SetTotals is the theoretical consumption (setpoints scaled by each done
// row's volume), ActualTotals is the sum of recorded readings and DeltaTotals
// is their difference. All channel totals are rounded to gram precision once,
// after accumulation.
type Summary struct {
	ProducedVolume  float64
	RemainingVolume float64
	SetTotals       recipe.Quantities
	ActualTotals    recipe.Quantities
	DeltaTotals     recipe.Quantities
}

// OrderSummarizer is a domain service that aggregates production totals for a
// single order. Only rows in the done state contribute; pending and running
// rows count toward the remaining volume.
type OrderSummarizer struct{}

// NewOrderSummarizer creates a new OrderSummarizer instance.
func NewOrderSummarizer() OrderSummarizer {
	return OrderSummarizer{}
}

// Summarize computes production totals for the order against the given
// recipe setpoints.
//
// An order with no completed rows yields zero totals and a remaining volume
// equal to the order total.
func (OrderSummarizer) Summarize(o *order.Order, setpoints recipe.Quantities) (Summary, error) {
	if err := o.Validate(); err != nil {
		return Summary{}, err
	}

	var (
		produced float64
		setTot   recipe.Quantities
		actTot   recipe.Quantities
	)
	for _, row := range o.Rows() {
		if row.State() != order.RowDone {
			continue
		}
		produced += row.PlannedVolume()
		for _, m := range recipe.Materials() {
			setTot = setTot.With(m, setTot.Get(m)+setpoints.Get(m)*row.PlannedVolume())
		}
		if actual := row.Actual(); actual != nil {
			for _, m := range recipe.Materials() {
				actTot = actTot.With(m, actTot.Get(m)+actual.Get(m))
			}
		}
	}

	var deltaTot recipe.Quantities
	for _, m := range recipe.Materials() {
		setTot = setTot.With(m, kernel.Round3(setTot.Get(m)))
		actTot = actTot.With(m, kernel.Round3(actTot.Get(m)))
		deltaTot = deltaTot.With(m, kernel.Round3(actTot.Get(m)-setTot.Get(m)))
	}

	produced = kernel.Round3(produced)
	return Summary{
		ProducedVolume:  produced,
		RemainingVolume: kernel.Round3(o.TotalVolume() - produced),
		SetTotals:       setTot,
		ActualTotals:    actTot,
		DeltaTotals:     deltaTot,
	}, nil
}
