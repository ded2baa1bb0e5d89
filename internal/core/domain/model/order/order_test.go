package order_test

import (
	"testing"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, totalVolume float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		totalVolume, 1.0, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func testReading() recipe.Quantities {
	return recipe.Quantities{Cement: 350.5, Sand: 649.2, Agg1: 601.1, Agg2: 398.9, Water: 180.3, Admix: 2.496}
}

func completeAllRows(t *testing.T, o *order.Order) {
	t.Helper()
	for _, row := range o.Rows() {
		_, err := o.CompleteRow(row.ID(), testReading(), time.Now().UTC())
		require.NoError(t, err)
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("plans_rows_for_fractional_total", func(t *testing.T) {
		o := newTestOrder(t, 2.5)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Running, o.Status())

		rows := o.Rows()
		require.Len(t, rows, 3)
		for i, row := range rows {
			assert.Equal(t, i+1, row.SeqNo())
			assert.Equal(t, order.RowPending, row.State())
			assert.Nil(t, row.Actual())
			assert.Nil(t, row.StartedAt())
		}
		assert.InDelta(t, 1.0, rows[0].PlannedVolume(), 1e-9)
		assert.InDelta(t, 1.0, rows[1].PlannedVolume(), 1e-9)
		assert.InDelta(t, 0.5, rows[2].PlannedVolume(), 1e-9)
	})

	t.Run("row_volumes_sum_to_total", func(t *testing.T) {
		o := newTestOrder(t, 40.0)

		require.Len(t, o.Rows(), 40)
		sum := 0.0
		for _, row := range o.Rows() {
			sum = kernel.Round3(sum + row.PlannedVolume())
		}
		assert.InDelta(t, o.TotalVolume(), sum, kernel.VolumeTolerance)
	})

	t.Run("non_positive_volume_rejected", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, 1.0, time.Now().UTC(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_StartNextRow(t *testing.T) {
	t.Run("starts_lowest_pending_row", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		at := time.Now().UTC()

		row, err := o.StartNextRow(at)

		require.NoError(t, err)
		assert.Equal(t, 1, row.SeqNo())
		assert.Equal(t, order.RowRunning, row.State())
		require.NotNil(t, row.StartedAt())
		assert.Equal(t, at, *row.StartedAt())
	})

	t.Run("skips_non_pending_rows", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		first, err := o.StartNextRow(time.Now().UTC())
		require.NoError(t, err)
		_, err = o.CompleteRow(first.ID(), testReading(), time.Now().UTC())
		require.NoError(t, err)

		second, err := o.StartNextRow(time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, 2, second.SeqNo())
	})

	t.Run("fails_not_found_when_none_pending", func(t *testing.T) {
		o := newTestOrder(t, 1.0)
		_, err := o.StartNextRow(time.Now().UTC())
		require.NoError(t, err)

		_, err = o.StartNextRow(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("fails_invalid_state_when_paused", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		_, changed := o.Pause()
		require.True(t, changed)

		_, err := o.StartNextRow(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("fails_invalid_state_when_stopped", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		_, changed := o.Stop()
		require.True(t, changed)

		_, err := o.StartNextRow(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("fails_invalid_state_when_done", func(t *testing.T) {
		o := newTestOrder(t, 1.0)
		completeAllRows(t, o)
		require.Equal(t, order.Done, o.Status())

		_, err := o.StartNextRow(time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_CompleteRow(t *testing.T) {
	t.Run("records_reading_and_timestamps", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		row, err := o.StartNextRow(time.Now().UTC())
		require.NoError(t, err)
		at := time.Now().UTC()

		done, err := o.CompleteRow(row.ID(), testReading(), at)

		require.NoError(t, err)
		assert.Equal(t, order.RowDone, done.State())
		require.NotNil(t, done.Actual())
		assert.Equal(t, testReading(), *done.Actual())
		require.NotNil(t, done.CompletedAt())
		assert.Equal(t, at, *done.CompletedAt())
		assert.Equal(t, order.Running, o.Status())
	})

	t.Run("second_completion_is_idempotent", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		row := o.Rows()[0]
		_, err := o.CompleteRow(row.ID(), testReading(), time.Now().UTC())
		require.NoError(t, err)
		firstReading := *row.Actual()
		firstAt := *row.CompletedAt()

		other := recipe.Quantities{Cement: 1}
		done, err := o.CompleteRow(row.ID(), other, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, firstReading, *done.Actual())
		assert.Equal(t, firstAt, *done.CompletedAt())
	})

	t.Run("unknown_row_fails_not_found", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		_, err := o.CompleteRow(kernel.NewUUID(), testReading(), time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("last_completion_forces_done", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		completeAllRows(t, o)
		assert.Equal(t, order.Done, o.Status())
	})

	t.Run("completion_overrides_paused_status", func(t *testing.T) {
		o := newTestOrder(t, 2.0)
		rows := o.Rows()
		_, err := o.CompleteRow(rows[0].ID(), testReading(), time.Now().UTC())
		require.NoError(t, err)

		_, changed := o.Pause()
		require.True(t, changed)
		require.Equal(t, order.Paused, o.Status())

		_, err = o.CompleteRow(rows[1].ID(), testReading(), time.Now().UTC())
		require.NoError(t, err)

		assert.Equal(t, order.Done, o.Status())
	})
}

func TestOrder_PauseResumeStop(t *testing.T) {
	t.Run("pause_rolls_running_row_back_to_pending", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		row, err := o.StartNextRow(time.Now().UTC())
		require.NoError(t, err)
		require.Equal(t, order.RowRunning, row.State())

		status, changed := o.Pause()

		assert.True(t, changed)
		assert.Equal(t, order.Paused, status)
		assert.Equal(t, order.RowPending, row.State())
		assert.Nil(t, row.StartedAt())

		running := 0
		for _, r := range o.Rows() {
			if r.State() == order.RowRunning {
				running++
			}
		}
		assert.Zero(t, running)
	})

	t.Run("pause_on_stopped_is_noop_report", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		_, changed := o.Stop()
		require.True(t, changed)

		status, changed := o.Pause()

		assert.False(t, changed)
		assert.Equal(t, order.Stopped, status)
	})

	t.Run("pause_on_done_is_noop_report", func(t *testing.T) {
		o := newTestOrder(t, 1.0)
		completeAllRows(t, o)

		status, changed := o.Pause()

		assert.False(t, changed)
		assert.Equal(t, order.Done, status)
	})

	t.Run("resume_after_pause", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		o.Pause()

		status, changed := o.Resume()

		assert.True(t, changed)
		assert.Equal(t, order.Running, status)

		_, err := o.StartNextRow(time.Now().UTC())
		require.NoError(t, err)
	})

	t.Run("resume_of_stopped_order_is_permitted", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		o.Stop()

		status, changed := o.Resume()

		assert.True(t, changed)
		assert.Equal(t, order.Running, status)
	})

	t.Run("stop_rolls_back_running_row", func(t *testing.T) {
		o := newTestOrder(t, 2.5)
		row, err := o.StartNextRow(time.Now().UTC())
		require.NoError(t, err)

		status, changed := o.Stop()

		assert.True(t, changed)
		assert.Equal(t, order.Stopped, status)
		assert.Equal(t, order.RowPending, row.State())
		assert.Nil(t, row.StartedAt())
	})

	t.Run("stop_on_done_is_noop_report", func(t *testing.T) {
		o := newTestOrder(t, 1.0)
		completeAllRows(t, o)

		status, changed := o.Stop()

		assert.False(t, changed)
		assert.Equal(t, order.Done, status)
	})
}

func TestOrder_AllocateRun_LegacyBlockMode(t *testing.T) {
	t.Run("first_two_blocks_cover_rows_1_15_and_16_30", func(t *testing.T) {
		o := newTestOrder(t, 40.0)
		vehicleID := kernel.NewUUID()

		first, err := o.AllocateRun(kernel.NewUUID(), vehicleID, nil, "", time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 1, first.LoadSeq())
		assert.Equal(t, 1, first.RowStartSeq())
		assert.Equal(t, 15, first.RowEndSeq())
		assert.InDelta(t, 15.0, first.Volume(), 1e-9)

		second, err := o.AllocateRun(kernel.NewUUID(), vehicleID, nil, "", time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 2, second.LoadSeq())
		assert.Equal(t, 16, second.RowStartSeq())
		assert.Equal(t, 30, second.RowEndSeq())
	})

	t.Run("short_tail_block", func(t *testing.T) {
		o := newTestOrder(t, 17.5)
		vehicleID := kernel.NewUUID()

		_, err := o.AllocateRun(kernel.NewUUID(), vehicleID, nil, "", time.Now().UTC())
		require.NoError(t, err)

		tail, err := o.AllocateRun(kernel.NewUUID(), vehicleID, nil, "last trip", time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 16, tail.RowStartSeq())
		assert.Equal(t, 18, tail.RowEndSeq())
		assert.InDelta(t, 2.5, tail.Volume(), 1e-9)
		assert.Equal(t, "last trip", tail.Note())
	})

	t.Run("no_unassigned_rows_fails_invalid_range", func(t *testing.T) {
		o := newTestOrder(t, 2.0)
		_, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(), nil, "", time.Now().UTC())
		require.NoError(t, err)

		_, err = o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(), nil, "", time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}

func TestOrder_AllocateRun_ExplicitRangeMode(t *testing.T) {
	t.Run("claims_rows_in_range", func(t *testing.T) {
		o := newTestOrder(t, 10.0)
		rng := &order.RowRange{StartSeq: 3, EndSeq: 5}

		run, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(), rng, "", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, 3, run.RowStartSeq())
		assert.Equal(t, 5, run.RowEndSeq())
		assert.InDelta(t, 3.0, run.Volume(), 1e-9)

		for _, row := range o.Rows() {
			if row.SeqNo() >= 3 && row.SeqNo() <= 5 {
				require.NotNil(t, row.CarRunID())
				assert.True(t, row.CarRunID().IsEqual(run.ID()))
			} else {
				assert.Nil(t, row.CarRunID())
			}
		}
	})

	t.Run("records_requested_bounds_when_some_rows_skipped", func(t *testing.T) {
		o := newTestOrder(t, 10.0)
		_, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(),
			&order.RowRange{StartSeq: 1, EndSeq: 3}, "", time.Now().UTC())
		require.NoError(t, err)

		// Rows 1..3 already claimed: only 4..6 are picked up, but the run
		// still records 1..6 as requested.
		run, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(),
			&order.RowRange{StartSeq: 1, EndSeq: 6}, "", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, 1, run.RowStartSeq())
		assert.Equal(t, 6, run.RowEndSeq())
		assert.InDelta(t, 3.0, run.Volume(), 1e-9)
	})

	t.Run("empty_selection_fails_range_not_found", func(t *testing.T) {
		o := newTestOrder(t, 3.0)

		_, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(),
			&order.RowRange{StartSeq: 10, EndSeq: 12}, "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidRange)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("fully_assigned_selection_fails_already_assigned", func(t *testing.T) {
		o := newTestOrder(t, 3.0)
		_, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(),
			&order.RowRange{StartSeq: 1, EndSeq: 3}, "", time.Now().UTC())
		require.NoError(t, err)

		_, err = o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(),
			&order.RowRange{StartSeq: 1, EndSeq: 3}, "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrInvalidRange)
		assert.Contains(t, err.Error(), "already assigned")
	})

	t.Run("inverted_range_rejected", func(t *testing.T) {
		o := newTestOrder(t, 3.0)

		_, err := o.AllocateRun(kernel.NewUUID(), kernel.NewUUID(),
			&order.RowRange{StartSeq: 3, EndSeq: 1}, "", time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

// TestOrder_AllocateRun_NoDoubleAssignment verifies the exclusivity
// invariant: across any sequence of allocations, each row belongs to at most
// one run.
func TestOrder_AllocateRun_NoDoubleAssignment(t *testing.T) {
	o := newTestOrder(t, 40.0)
	vehicleID := kernel.NewUUID()

	_, err := o.AllocateRun(kernel.NewUUID(), vehicleID,
		&order.RowRange{StartSeq: 5, EndSeq: 20}, "", time.Now().UTC())
	require.NoError(t, err)

	_, err = o.AllocateRun(kernel.NewUUID(), vehicleID, nil, "", time.Now().UTC())
	require.NoError(t, err)

	_, err = o.AllocateRun(kernel.NewUUID(), vehicleID,
		&order.RowRange{StartSeq: 1, EndSeq: 40}, "", time.Now().UTC())
	require.NoError(t, err)

	seen := map[string]int{}
	for _, row := range o.Rows() {
		if row.CarRunID() != nil {
			seen[row.CarRunID().String()]++
		}
	}
	total := 0
	for _, n := range seen {
		total += n
	}
	assert.Equal(t, 40, total, "every row assigned exactly once across all runs")
	assert.Len(t, seen, 3)
}
