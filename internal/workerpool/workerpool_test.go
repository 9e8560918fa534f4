package workerpool_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/reachlab/spatialgraph/internal/workerpool"
	"github.com/stretchr/testify/require"
)

func TestRun_VisitsEveryIndex(t *testing.T) {
	const n = 200
	var seen [n]int32

	err := workerpool.Run(context.Background(), n, 8, func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	require.NoError(t, err)

	for i, v := range seen {
		require.Equalf(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestRun_PropagatesFirstError(t *testing.T) {
	boom := require.New(t)
	err := workerpool.Run(context.Background(), 10, 4, func(i int) error {
		if i == 5 {
			return errBoom
		}
		return nil
	})
	boom.ErrorIs(err, errBoom)
}

func TestRun_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := workerpool.Run(ctx, 1000, 4, func(i int) error {
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_ZeroWorkIsNoop(t *testing.T) {
	err := workerpool.Run(context.Background(), 0, 4, func(i int) error {
		t.Fatal("should not be called")
		return nil
	})
	require.NoError(t, err)
}

var errBoom = testErr("boom")

type testErr string

func (e testErr) Error() string { return string(e) }
