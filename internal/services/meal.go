package services

import "fitledger/internal/models"

// ClaimMealRewards pays out an externally scored meal (1..100 points) at
// the configured per-point rate, at most once per claim interval per
// account. The caller's admin authority is established upstream.
func (s *RewardService) ClaimMealRewards(account string, score int) (models.Amount, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return 0, err
	}
	if score < 1 || score > 100 {
		return 0, ErrInvalidMealScore
	}

	acc := s.store.GetOrCreate(account)
	interval := int64(s.conf.Engine.MealClaimInterval.Seconds())
	if acc.LastMealClaim != 0 && now.Unix()-acc.LastMealClaim < interval {
		return 0, ErrMealClaimTooSoon
	}

	reward := models.Amount(int64(score) * s.conf.Engine.MealRewardPerPoint)
	if err := s.token.Mint(account, reward); err != nil {
		return 0, err
	}

	acc.LastMealClaim = now.Unix()
	s.store.Put(account, acc)

	return reward, nil
}
