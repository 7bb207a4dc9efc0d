package services

import (
	"math/big"
	"time"

	"fitledger/internal/models"
)

// rewardableDuration implements the anti-hoarding rule: once more than a
// full day has elapsed since the last claim, only the most recent
// fractional day is payable. Flagged for product review; isolated here so
// the policy can be swapped without touching the rest of the stake logic.
func rewardableDuration(elapsed int64) int64 {
	if elapsed < 0 {
		return 0
	}
	if elapsed > models.DaySeconds {
		return elapsed % models.DaySeconds
	}
	return elapsed
}

// stakeReward computes the accrued reward for one stake at `now`:
// amount * multiplier * rewardedDuration / (100 * 365d), single truncating
// division. big.Int keeps the 3-factor product exact for large principals.
func stakeReward(stake models.Stake, multiplier int64, now time.Time) models.Amount {
	dur := rewardableDuration(now.Unix() - stake.LastClaimed)
	if dur == 0 || multiplier <= 0 {
		return 0
	}
	num := new(big.Int).SetInt64(int64(stake.Amount))
	num.Mul(num, big.NewInt(multiplier))
	num.Mul(num, big.NewInt(dur))
	num.Quo(num, big.NewInt(100*models.YearSeconds))
	return models.Amount(num.Int64())
}

func (s *RewardService) Stake(account string, amount models.Amount, lockMonths int) (models.Stake, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return models.Stake{}, err
	}
	if amount <= 0 {
		return models.Stake{}, ErrZeroAmount
	}
	if !models.IsValidLockMonths(lockMonths) {
		return models.Stake{}, ErrInvalidLockPeriod
	}

	acc := s.store.GetOrCreate(account)
	if lockMonths == models.PremiumLockMonths && !s.premiumActive(acc, now) {
		return models.Stake{}, ErrUnauthorizedAccess
	}

	// Principal moves into custody before any record mutation; a failed
	// transfer leaves the ledger untouched.
	if err := s.token.Transfer(account, models.CustodyAccount, amount); err != nil {
		return models.Stake{}, err
	}

	stake := models.Stake{
		ID:           acc.NextStakeID,
		Amount:       amount,
		StartTime:    now.Unix(),
		LockDuration: int64(lockMonths) * models.MonthSeconds,
		LastClaimed:  now.Unix(),
		LockMonths:   lockMonths,
	}
	acc.NextStakeID++
	acc.Stakes = append(acc.Stakes, stake)
	s.store.Put(account, acc)

	return stake, nil
}

func (s *RewardService) Unstake(account string, index int) (models.Amount, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return 0, err
	}
	acc, ok := s.store.Get(account)
	if !ok {
		return 0, ErrUnknownAccount
	}
	if index < 0 || index >= len(acc.Stakes) {
		return 0, ErrStakeNotFound
	}
	stake := acc.Stakes[index]
	if !stake.Unlocked(now) {
		return 0, ErrLockPeriodActive
	}

	principal := stake.Amount
	fee := principal.MulBps(s.conf.Engine.UnstakeBurnBps)
	payout := principal - fee

	if err := s.token.Transfer(models.CustodyAccount, account, payout); err != nil {
		return 0, err
	}

	// Compacting removal: the last stake slides into the freed slot, so
	// indexes held across operations are transient handles only.
	acc.Stakes[index] = acc.Stakes[len(acc.Stakes)-1]
	acc.Stakes = acc.Stakes[:len(acc.Stakes)-1]
	s.store.Put(account, acc)

	return payout, nil
}

func (s *RewardService) Restake(account string, index int, newLockMonths int) (models.Stake, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return models.Stake{}, err
	}
	if !models.IsValidLockMonths(newLockMonths) {
		return models.Stake{}, ErrInvalidLockPeriod
	}
	acc, ok := s.store.Get(account)
	if !ok {
		return models.Stake{}, ErrUnknownAccount
	}
	if index < 0 || index >= len(acc.Stakes) {
		return models.Stake{}, ErrStakeNotFound
	}
	old := acc.Stakes[index]
	if !old.Unlocked(now) {
		return models.Stake{}, ErrLockPeriodActive
	}
	if newLockMonths == models.PremiumLockMonths && !s.premiumActive(acc, now) {
		return models.Stake{}, ErrUnauthorizedAccess
	}

	// Same principal, new lock, no fee. The old entry is removed and the
	// replacement appended, so the principal never leaves custody.
	replacement := models.Stake{
		ID:           acc.NextStakeID,
		Amount:       old.Amount,
		StartTime:    now.Unix(),
		LockDuration: int64(newLockMonths) * models.MonthSeconds,
		LastClaimed:  now.Unix(),
		LockMonths:   newLockMonths,
	}
	acc.NextStakeID++
	acc.Stakes[index] = acc.Stakes[len(acc.Stakes)-1]
	acc.Stakes[len(acc.Stakes)-1] = replacement
	s.store.Put(account, acc)

	return replacement, nil
}

func (s *RewardService) ClaimStakingRewards(account string, index int) (models.Amount, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return 0, err
	}
	acc, ok := s.store.Get(account)
	if !ok {
		return 0, ErrUnknownAccount
	}
	if index < 0 || index >= len(acc.Stakes) {
		return 0, ErrStakeNotFound
	}

	stake := acc.Stakes[index]
	reward := stakeReward(stake, s.multiplier(stake.LockMonths), now)

	if err := s.token.Mint(account, reward); err != nil {
		return 0, err
	}

	// lastClaimed advances unconditionally, even on a zero reward.
	acc.Stakes[index].LastClaimed = now.Unix()
	s.store.Put(account, acc)

	return reward, nil
}

func (s *RewardService) ClaimAllStakingRewards(account string) (models.Amount, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return 0, err
	}
	acc, ok := s.store.Get(account)
	if !ok {
		return 0, ErrUnknownAccount
	}

	var total models.Amount
	for i := range acc.Stakes {
		total += stakeReward(acc.Stakes[i], s.multiplier(acc.Stakes[i].LockMonths), now)
	}
	if total < models.Amount(s.conf.Engine.ClaimDustThreshold) {
		return 0, ErrNoRewardsAvailable
	}

	if err := s.token.Mint(account, total); err != nil {
		return 0, err
	}
	for i := range acc.Stakes {
		acc.Stakes[i].LastClaimed = now.Unix()
	}
	s.store.Put(account, acc)

	return total, nil
}

func (s *RewardService) GetUserStake(account string, index int) (models.Stake, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	acc, ok := s.store.Get(account)
	if !ok {
		return models.Stake{}, ErrUnknownAccount
	}
	if index < 0 || index >= len(acc.Stakes) {
		return models.Stake{}, ErrStakeNotFound
	}
	return acc.Stakes[index], nil
}

func (s *RewardService) GetUserStakes(account string) []models.Stake {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	acc, ok := s.store.Get(account)
	if !ok {
		return []models.Stake{}
	}
	return acc.Stakes
}

func (s *RewardService) GetUserStakeCount(account string) int {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	acc, ok := s.store.Get(account)
	if !ok {
		return 0
	}
	return len(acc.Stakes)
}
