package order_test

import (
	"testing"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "running", order.Running.String())
	assert.Equal(t, "paused", order.Paused.String())
	assert.Equal(t, "stopped", order.Stopped.String())
	assert.Equal(t, "done", order.Done.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Running, order.Paused, order.Stopped, order.Done} {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_CanStartRow(t *testing.T) {
	require.NoError(t, order.Running.CanStartRow())

	for _, s := range []order.Status{order.Paused, order.Stopped, order.Done} {
		err := s.CanStartRow()
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), s.String())
	}
}

func TestStatus_Pause(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		want    order.Status
		changed bool
	}{
		{"running_pauses", order.Running, order.Paused, true},
		{"paused_is_noop_report", order.Paused, order.Paused, false},
		{"stopped_is_noop_report", order.Stopped, order.Stopped, false},
		{"done_is_noop_report", order.Done, order.Done, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.from.Pause()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestStatus_Resume(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		want    order.Status
		changed bool
	}{
		{"paused_resumes", order.Paused, order.Running, true},
		{"stopped_resumes", order.Stopped, order.Running, true},
		{"running_is_noop_report", order.Running, order.Running, false},
		{"done_is_noop_report", order.Done, order.Done, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.from.Resume()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestStatus_Stop(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		want    order.Status
		changed bool
	}{
		{"running_stops", order.Running, order.Stopped, true},
		{"paused_stops", order.Paused, order.Stopped, true},
		{"stopped_is_noop_report", order.Stopped, order.Stopped, false},
		{"done_is_noop_report", order.Done, order.Done, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.from.Stop()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
