// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/petar-djukic/go-jyotish/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver implements Observer for testing.
type recordingObserver struct {
	mu         sync.Mutex
	outcomes   map[Outcome]int
	exceptions map[types.ExceptionKind]int
	absent     []types.House
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		outcomes:   map[Outcome]int{},
		exceptions: map[types.ExceptionKind]int{},
	}
}

func (o *recordingObserver) ChartAnalyzed(outcome Outcome, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes[outcome]++
}

func (o *recordingObserver) PadaComputed(kind types.ExceptionKind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.exceptions[kind]++
}

func (o *recordingObserver) PadaAbsent(origin types.House) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.absent = append(o.absent, origin)
}

func marsChart(t *testing.T) types.Chart {
	t.Helper()
	c, err := types.NewChart(types.Ascendant{Sign: types.Aries, Longitude: 0},
		map[types.Planet]types.Position{types.Mars: {Longitude: 195}})
	require.NoError(t, err)
	return c
}

func TestRunner_Run(t *testing.T) {
	obs := newRecordingObserver()
	runner := NewRunner(Deps{Observer: obs})

	result, err := runner.Run(context.Background(), marsChart(t))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Houses.Houses, types.HouseCount)
	al, ok := result.Arudha.ArudhaLagna()
	require.True(t, ok)
	assert.Equal(t, types.House(10), al.Corrected)

	assert.Equal(t, 1, obs.outcomes[OutcomeOK])
	assert.Equal(t, 1, obs.exceptions[types.ExceptionSelfCoincidence])
	assert.Equal(t, 1, obs.exceptions[types.ExceptionNone])
	assert.Len(t, obs.absent, 10)
}

func TestRunner_MalformedChart(t *testing.T) {
	obs := newRecordingObserver()
	runner := NewRunner(Deps{Observer: obs})

	result, err := runner.Run(context.Background(), types.Chart{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, types.ErrMalformedChart)

	_, err = runner.Houses(context.Background(), types.Chart{})
	assert.ErrorIs(t, err, types.ErrMalformedChart)
	_, err = runner.Arudha(context.Background(), types.Chart{})
	assert.ErrorIs(t, err, types.ErrMalformedChart)

	assert.Equal(t, 3, obs.outcomes[OutcomeMalformed])
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	obs := newRecordingObserver()
	_, err := NewRunner(Deps{Observer: obs}).Run(ctx, marsChart(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, obs.outcomes[OutcomeCancelled])
}

func TestRunner_NilObserver(t *testing.T) {
	runner := NewRunner(Deps{})
	_, err := runner.Run(context.Background(), marsChart(t))
	assert.NoError(t, err)
	_, err = runner.Arudha(context.Background(), marsChart(t))
	assert.NoError(t, err)
}

func TestRunner_HousesOptions(t *testing.T) {
	runner := NewRunner(Deps{RankSize: 4, SkipAspects: true})
	report, err := runner.Houses(context.Background(), marsChart(t))
	require.NoError(t, err)
	assert.Len(t, report.Ranking.Strongest, 4)
	for _, ha := range report.Houses {
		assert.Empty(t, ha.Aspects)
	}
}

func TestRunner_BatchKeepsOrderAndIsolatesFailures(t *testing.T) {
	good := marsChart(t)
	errBroken := errors.New("broken file")

	var jobs []Job
	for i := range 8 {
		name := fmt.Sprintf("chart-%d", i)
		switch i {
		case 3:
			jobs = append(jobs, Job{Name: name, Load: func(context.Context) (types.Chart, error) {
				return types.Chart{}, errBroken
			}})
		case 5:
			jobs = append(jobs, Job{Name: name, Load: func(context.Context) (types.Chart, error) {
				return types.Chart{}, nil
			}})
		default:
			jobs = append(jobs, Job{Name: name, Load: func(context.Context) (types.Chart, error) {
				return good, nil
			}})
		}
	}

	obs := newRecordingObserver()
	items := NewRunner(Deps{Observer: obs, Workers: 3}).Batch(context.Background(), jobs)
	require.Len(t, items, len(jobs))

	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("chart-%d", i), item.Name)
		switch i {
		case 3:
			assert.ErrorIs(t, item.Err, errBroken)
			assert.Equal(t, "broken file", item.Error)
			assert.Nil(t, item.Result)
		case 5:
			assert.ErrorIs(t, item.Err, types.ErrMalformedChart)
			assert.Nil(t, item.Result)
		default:
			assert.NoError(t, item.Err)
			require.NotNil(t, item.Result)
			assert.Len(t, item.Result.Arudha.Padas, 2)
		}
	}
	assert.Equal(t, 6, obs.outcomes[OutcomeOK])
	assert.Equal(t, 1, obs.outcomes[OutcomeMalformed])
	assert.Equal(t, 1, obs.outcomes[OutcomeLoadError])
}

func TestRunner_BatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loaded := false
	items := NewRunner(Deps{}).Batch(ctx, []Job{{Name: "a", Load: func(context.Context) (types.Chart, error) {
		loaded = true
		return types.Chart{}, nil
	}}, {Name: "b"}})

	require.Len(t, items, 2)
	assert.ErrorIs(t, items[0].Err, context.Canceled)
	assert.ErrorIs(t, items[1].Err, context.Canceled)
	assert.False(t, loaded)
}

func TestRunner_BatchMissingLoader(t *testing.T) {
	items := NewRunner(Deps{}).Batch(context.Background(), []Job{{Name: "orphan"}})
	require.Len(t, items, 1)
	assert.EqualError(t, items[0].Err, "orphan: no chart source")
}
