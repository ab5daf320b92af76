package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockOrderRepairer is a mock implementation of OrderRepairer
type mockOrderRepairer struct {
	repaired int
	err      error
	calls    atomic.Int32
	deadline bool
}

func (m *mockOrderRepairer) RepairAll(ctx context.Context) (int, error) {
	m.calls.Add(1)
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return 0, m.err
	}
	return m.repaired, nil
}

func TestOrderRepairJob_Run(t *testing.T) {
	tests := []struct {
		name          string
		repairer      *mockOrderRepairer
		expectedLevel zapcore.Level
		expectedLog   string
	}{
		{
			name:          "repaired items",
			repairer:      &mockOrderRepairer{repaired: 3},
			expectedLevel: zapcore.InfoLevel,
			expectedLog:   "order repair finished",
		},
		{
			name:          "nothing to fix",
			repairer:      &mockOrderRepairer{},
			expectedLevel: zapcore.DebugLevel,
			expectedLog:   "order repair found nothing to fix",
		},
		{
			name:          "repair error",
			repairer:      &mockOrderRepairer{err: errors.New("db down")},
			expectedLevel: zapcore.ErrorLevel,
			expectedLog:   "order repair failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			job := NewOrderRepairJob(tt.repairer, time.Second, zap.New(core))

			job.Run(context.Background())

			assert.Equal(t, int32(1), tt.repairer.calls.Load())
			assert.True(t, tt.repairer.deadline)
			entries := logs.FilterMessage(tt.expectedLog).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
		})
	}
}

func TestOrderRepairJob_StartAndStop(t *testing.T) {
	repairer := &mockOrderRepairer{}
	job := NewOrderRepairJob(repairer, 0, zap.NewNop())

	require.NoError(t, job.Start("@every 1s"))
	assert.Error(t, job.Start("@every 1s"), "second start must fail")

	require.Eventually(t, func() bool {
		return repairer.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	job.Stop(ctx)

	calls := repairer.calls.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, calls, repairer.calls.Load(), "no runs after stop")
}

func TestOrderRepairJob_InvalidSchedule(t *testing.T) {
	job := NewOrderRepairJob(&mockOrderRepairer{}, 0, zap.NewNop())

	err := job.Start("every now and then")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order repair schedule")

	// Stop on a job that never started is a no-op
	job.Stop(context.Background())
}
