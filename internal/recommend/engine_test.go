// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSource replays a queue of fetch results, repeating the last one.
type mockSource struct {
	mu      sync.Mutex
	results [][]InteractionRecord
	errs    []error
	calls   int
}

func (m *mockSource) FetchInteractions(ctx context.Context) ([]InteractionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := min(m.calls, len(m.results)-1)
	m.calls++
	return m.results[i], m.errs[i]
}

func newMockSource(batches ...[]InteractionRecord) *mockSource {
	return &mockSource{results: batches, errs: make([]error, len(batches))}
}

// echoDetails returns one row per id, in reverse order.
func echoDetails(_ context.Context, ids []string) ([]Detail, error) {
	out := make([]Detail, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, Detail{"id": ids[i], "name": "item " + ids[i]})
	}
	return out, nil
}

func newTestEngine(t *testing.T, source InteractionSource, details DetailStore) *Engine {
	t.Helper()

	e, err := NewEngine(KindProduct, source, details, DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return e
}

func TestNewEngine_Validation(t *testing.T) {
	t.Parallel()

	src := newMockSource(nil)
	det := DetailFunc(echoDetails)

	_, err := NewEngine("bogus", src, det, nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewEngine(KindProduct, nil, det, nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewEngine(KindProduct, src, nil, nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewEngine(KindProduct, src, det, &Config{MaxRank: 0, DefaultTopK: 5, MaxTopK: 10}, zerolog.Nop())
	assert.Error(t, err)

	e, err := NewEngine(KindSupplier, src, det, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, KindSupplier, e.Kind())
	assert.False(t, e.Ready())
}

func TestEngine_RecommendBeforeTraining(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords()), DetailFunc(echoDetails))

	got, err := e.Recommend(context.Background(), "A", 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEngine_TrainAndRecommend(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords()), DetailFunc(echoDetails))
	require.NoError(t, e.Train(context.Background()))
	assert.True(t, e.Ready())

	got, err := e.Recommend(context.Background(), "A", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Rows come back in rank order even though the store reverses them.
	want := ids(Recommend(e.Registry().Current(), "A", 2))
	assert.Equal(t, want[0], got[0]["id"])
	assert.Equal(t, want[1], got[1]["id"])

	status := e.GetStatus()
	assert.True(t, status.Ready)
	assert.False(t, status.IsTraining)
	assert.Equal(t, int64(1), status.ModelVersion)
	assert.Equal(t, 3, status.BuyerCount)
	assert.Equal(t, 4, status.ItemCount)
	assert.Equal(t, 5, status.InteractionCount)
	assert.InDelta(t, 4.5, status.TotalWeight, 1e-12)
	assert.Equal(t, 2, status.Rank)
	assert.Equal(t, int64(1), status.TrainCount)
	assert.Zero(t, status.FailureCount)
}

// TestEngine_StatusNeverAheadOfServedSnapshot checks that a snapshot is
// served before the status reports its version. The clock is read while
// the outcome is recorded, so it sees what readers would see at that point.
func TestEngine_StatusNeverAheadOfServedSnapshot(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords()), DetailFunc(echoDetails))

	var served []int64
	e.now = func() time.Time {
		var v int64
		if snap := e.Registry().Current(); snap != nil {
			v = snap.Version()
		}
		served = append(served, v)
		return time.Now()
	}

	require.NoError(t, e.Train(context.Background()))
	require.GreaterOrEqual(t, len(served), 2)
	assert.Zero(t, served[0], "nothing is served when training starts")
	for i, v := range served[1:] {
		assert.Equal(t, int64(1), v, "clock read %d happened before publish", i+1)
	}
	assert.Equal(t, int64(1), e.GetStatus().ModelVersion)
}

func TestEngine_UnknownBuyer(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords()), DetailFunc(echoDetails))
	require.NoError(t, e.Train(context.Background()))

	got, err := e.Recommend(context.Background(), "stranger", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEngine_EmptyCycleKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords(), nil), DetailFunc(echoDetails))
	require.NoError(t, e.Train(context.Background()))
	before := e.Registry().Current()

	err := e.Train(context.Background())
	assert.ErrorIs(t, err, ErrDegenerateModel)
	assert.Same(t, before, e.Registry().Current())

	got, err := e.Recommend(context.Background(), "A", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	status := e.GetStatus()
	assert.True(t, status.Ready)
	assert.Equal(t, int64(1), status.ModelVersion)
	assert.Equal(t, int64(2), status.TrainCount)
	assert.Equal(t, int64(1), status.FailureCount)
	assert.NotEmpty(t, status.LastError)
}

func TestEngine_DegenerateFirstCycle(t *testing.T) {
	t.Parallel()

	src := newMockSource([]InteractionRecord{{BuyerID: "A", ItemID: "1", Weight: 1}})
	e := newTestEngine(t, src, DetailFunc(echoDetails))

	assert.ErrorIs(t, e.Train(context.Background()), ErrDegenerateModel)
	assert.False(t, e.Ready())

	got, err := e.Recommend(context.Background(), "A", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEngine_SourceFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	src := &mockSource{results: [][]InteractionRecord{nil}, errs: []error{boom}}
	e := newTestEngine(t, src, DetailFunc(echoDetails))

	err := e.Train(context.Background())
	assert.ErrorIs(t, err, ErrDataSourceFailure)
	assert.ErrorIs(t, err, boom)
	assert.False(t, e.Ready())
}

func TestEngine_DetailFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	failing := DetailFunc(func(context.Context, []string) ([]Detail, error) { return nil, boom })
	e := newTestEngine(t, newMockSource(scenarioRecords()), failing)
	require.NoError(t, e.Train(context.Background()))

	_, err := e.Recommend(context.Background(), "A", 2)
	assert.ErrorIs(t, err, ErrDetailLookupFailure)
	assert.ErrorIs(t, err, boom)
}

func TestEngine_VersionIncrements(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords()), DetailFunc(echoDetails))
	for i := 0; i < 3; i++ {
		require.NoError(t, e.Train(context.Background()))
	}
	assert.Equal(t, int64(3), e.Registry().Current().Version())
}

func TestEngine_TrainingInProgress(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	blocking := SourceFunc(func(context.Context) ([]InteractionRecord, error) {
		close(started)
		<-release
		return scenarioRecords(), nil
	})
	e := newTestEngine(t, blocking, DetailFunc(echoDetails))

	done := make(chan error, 1)
	go func() { done <- e.Train(context.Background()) }()

	<-started
	assert.True(t, e.GetStatus().IsTraining)
	assert.ErrorIs(t, e.Train(context.Background()), ErrTrainingInProgress)

	close(release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("training did not finish")
	}
}

func TestEngine_ConcurrentReadsDuringPublish(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, newMockSource(scenarioRecords()), DetailFunc(echoDetails))
	require.NoError(t, e.Train(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := e.Recommend(context.Background(), "B", 2)
				assert.NoError(t, err)
				assert.Len(t, got, 2)
			}
		}()
	}
	for i := 0; i < 5; i++ {
		_ = e.Train(context.Background())
	}
	wg.Wait()
}

func TestOrderDetails(t *testing.T) {
	t.Parallel()

	rows := []Detail{
		{"id": "b", "name": "B"},
		{"id": 7, "name": "seven"},
		{"id": "x", "name": "not requested"},
		{"name": "no id"},
	}

	got := orderDetails([]string{"7", "missing", "b"}, rows)
	require.Len(t, got, 2)
	assert.Equal(t, "seven", got[0]["name"])
	assert.Equal(t, "B", got[1]["name"])
}
