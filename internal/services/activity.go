package services

import (
	"time"

	"fitledger/internal/models"
)

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// rolledOver returns the activity record as of `now`: counters are zeroed
// if the stored day has already passed. Pure in (record, now).
func rolledOver(rec models.ActivityRecord, now time.Time) models.ActivityRecord {
	if models.DayIndex(now) != rec.LastDayReset {
		rec.DailySteps = 0
		rec.DailyMets = 0
		rec.LastDayReset = models.DayIndex(now)
	}
	return rec
}

// activityReward computes the marginal reward for adding steps/mets on top
// of the current daily counters. Storage is uncapped for auditability;
// only newly-crossed units below the daily caps are paid.
func (s *RewardService) activityReward(rec models.ActivityRecord, steps, mets int64, rate models.RateState, premium bool) ActivityPayout {
	eng := &s.conf.Engine

	prevSteps := minInt64(rec.DailySteps, eng.MaxDailySteps)
	newSteps := minInt64(rec.DailySteps+steps, eng.MaxDailySteps)
	rewardableSteps := newSteps - prevSteps

	payout := ActivityPayout{
		StepsReward: models.Amount(rate.BaseStepsRate * rewardableSteps / eng.StepsUnit),
	}

	// METs pay out only while the account holds effective premium status.
	if premium {
		prevMets := minInt64(rec.DailyMets, eng.MaxDailyMets)
		newMets := minInt64(rec.DailyMets+mets, eng.MaxDailyMets)
		payout.MetsReward = models.Amount(rate.BaseMetsRate * (newMets - prevMets) / eng.MetsUnit)
	}

	payout.Total = payout.StepsReward + payout.MetsReward
	return payout
}

func (s *RewardService) RecordActivity(account string, steps, mets int64) (ActivityPayout, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return ActivityPayout{}, err
	}
	if steps < 0 || mets < 0 || steps+mets == 0 {
		return ActivityPayout{}, ErrInvalidActivityInput
	}

	eng := &s.conf.Engine
	acc := s.store.GetOrCreate(account)
	rec := acc.Activity

	// One recording per minute per account, and per-minute volume bounds
	// scaled by the elapsed whole minutes since the last accepted one.
	minutes := int64(1)
	if rec.LastUpdated != 0 {
		elapsed := now.Unix() - rec.LastUpdated
		if elapsed < int64(eng.RecordInterval.Seconds()) {
			return ActivityPayout{}, ErrInvalidActivityInput
		}
		minutes = elapsed / 60
	}
	if steps > eng.MaxStepsPerMinute*minutes || mets > eng.MaxMetsPerMinute*minutes {
		return ActivityPayout{}, ErrInvalidActivityInput
	}

	s.applyRateDecay(now)
	rec = rolledOver(rec, now)

	payout := s.activityReward(rec, steps, mets, s.rate, s.premiumActive(acc, now))

	if err := s.token.Mint(account, payout.Total); err != nil {
		return ActivityPayout{}, err
	}

	// Referral bonus is routed atomically with the referee's payout.
	referrer := acc.Referral.Referrer
	if referrer != "" && payout.Total > 0 {
		payout.ReferralBonus = payout.Total.MulBps(eng.ReferralBonusBps)
		if payout.ReferralBonus > 0 {
			if err := s.token.Mint(referrer, payout.ReferralBonus); err != nil {
				return ActivityPayout{}, err
			}
			ref := s.store.GetOrCreate(referrer)
			ref.Referral.EarnedBonus += payout.ReferralBonus
			s.store.Put(referrer, ref)
		}
	}

	rec.DailySteps += steps
	rec.DailyMets += mets
	rec.LastUpdated = now.Unix()
	acc.Activity = rec
	s.store.Put(account, acc)

	return payout, nil
}

func (s *RewardService) GetTodayUserActivity(account string) models.ActivityRecord {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	acc, ok := s.store.Get(account)
	if !ok {
		return rolledOver(models.ActivityRecord{}, now)
	}
	return rolledOver(acc.Activity, now)
}

// CalculateActivityRewards previews what a submission would earn right
// now. No counters, rates or balances are touched; rate decay is derived
// on the fly.
func (s *RewardService) CalculateActivityRewards(account string, steps, mets int64) (ActivityPayout, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if steps < 0 || mets < 0 {
		return ActivityPayout{}, ErrInvalidActivityInput
	}

	acc, ok := s.store.Get(account)
	if !ok {
		acc = &models.Account{}
	}
	rec := rolledOver(acc.Activity, now)
	rate := decayedRates(s.rate, s.conf.Engine.RateDecayBps, now)

	payout := s.activityReward(rec, steps, mets, rate, s.premiumActive(acc, now))
	if acc.Referral.Referrer != "" {
		payout.ReferralBonus = payout.Total.MulBps(s.conf.Engine.ReferralBonusBps)
	}
	return payout, nil
}
