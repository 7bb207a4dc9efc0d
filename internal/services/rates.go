package services

import (
	"time"

	"fitledger/internal/models"
)

// decayedRates derives the current rate state from a stored one, pure in
// (state, now). Decay compounds once per elapsed whole day and never
// increases a rate.
func decayedRates(state models.RateState, decayBps int64, now time.Time) models.RateState {
	today := models.DayIndex(now)
	if decayBps <= 0 || today <= state.LastDecayDay {
		return state
	}
	steps := state.BaseStepsRate
	mets := state.BaseMetsRate
	for day := state.LastDecayDay; day < today; day++ {
		steps = steps * (10000 - decayBps) / 10000
		mets = mets * (10000 - decayBps) / 10000
	}
	return models.RateState{
		BaseStepsRate: steps,
		BaseMetsRate:  mets,
		LastDecayDay:  today,
	}
}

// applyRateDecay persists the lazily computed decay. Called under opMu by
// every rate-consuming mutating operation before reward computation.
func (s *RewardService) applyRateDecay(now time.Time) {
	s.rate = decayedRates(s.rate, s.conf.Engine.RateDecayBps, now)
}
