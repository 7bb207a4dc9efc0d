package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitledger/internal/models"
)

func TestDecayedRates_NoElapsedDay(t *testing.T) {
	state := models.RateState{BaseStepsRate: 1000, BaseMetsRate: 500, LastDecayDay: models.DayIndex(testStart)}

	got := decayedRates(state, 10, testStart)
	assert.Equal(t, state, got)

	got = decayedRates(state, 10, testStart.Add(11*time.Hour))
	assert.Equal(t, state, got)
}

func TestDecayedRates_CompoundsPerDay(t *testing.T) {
	state := models.RateState{
		BaseStepsRate: 1_000_000_000,
		BaseMetsRate:  500_000_000,
		LastDecayDay:  models.DayIndex(testStart),
	}

	got := decayedRates(state, 10, testStart.Add(24*time.Hour))
	assert.Equal(t, int64(999_000_000), got.BaseStepsRate)
	assert.Equal(t, int64(499_500_000), got.BaseMetsRate)
	assert.Equal(t, state.LastDecayDay+1, got.LastDecayDay)

	got = decayedRates(state, 10, testStart.Add(3*24*time.Hour))
	assert.Equal(t, int64(997_002_999), got.BaseStepsRate)
	assert.Equal(t, state.LastDecayDay+3, got.LastDecayDay)
}

func TestDecayedRates_ZeroDecayDisabled(t *testing.T) {
	state := models.RateState{BaseStepsRate: 1000, BaseMetsRate: 500, LastDecayDay: models.DayIndex(testStart)}

	got := decayedRates(state, 0, testStart.Add(100*24*time.Hour))
	assert.Equal(t, state, got)
}

func TestDecayedRates_ClockSkewNeverRaisesRates(t *testing.T) {
	state := models.RateState{BaseStepsRate: 1000, BaseMetsRate: 500, LastDecayDay: models.DayIndex(testStart)}

	got := decayedRates(state, 10, testStart.Add(-48*time.Hour))
	assert.Equal(t, state, got)
}

func TestDecayedRates_RatesDecayToZeroEventually(t *testing.T) {
	state := models.RateState{BaseStepsRate: 10, BaseMetsRate: 5, LastDecayDay: models.DayIndex(testStart)}

	// Integer truncation bottoms out at zero, never negative.
	got := decayedRates(state, 9999, testStart.Add(5*24*time.Hour))
	assert.Equal(t, int64(0), got.BaseStepsRate)
	assert.Equal(t, int64(0), got.BaseMetsRate)
}

func TestApplyRateDecay_Persists(t *testing.T) {
	svc, _, clock := newTestService()

	clock.Advance(2 * 24 * time.Hour)
	svc.applyRateDecay(clock.Now())

	assert.Equal(t, int64(998_001_000), svc.rate.BaseStepsRate)
	assert.Equal(t, models.DayIndex(clock.Now()), svc.rate.LastDecayDay)

	// A second application on the same day is a no-op.
	svc.applyRateDecay(clock.Now())
	assert.Equal(t, int64(998_001_000), svc.rate.BaseStepsRate)
}
