package services

import "fitledger/internal/models"

// SetPremiumStatus grants or revokes the paid tier. Granting accepts
// exactly the monthly or yearly price, nothing else; revoking clears the
// record eagerly, unlike expiry which is lazy.
func (s *RewardService) SetPremiumStatus(account string, isPremium bool, amountPaid models.Amount) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	if err := s.checkPaused(); err != nil {
		return err
	}

	acc := s.store.GetOrCreate(account)
	if !isPremium {
		acc.Premium = models.PremiumStatus{}
		s.store.Put(account, acc)
		return nil
	}

	var duration int64
	switch int64(amountPaid) {
	case s.conf.Engine.PremiumMonthlyPrice:
		duration = 30 * models.DaySeconds
	case s.conf.Engine.PremiumYearlyPrice:
		duration = models.YearSeconds
	default:
		return ErrInvalidPremiumAmount
	}

	acc.Premium = models.PremiumStatus{
		IsPremium:  true,
		AmountPaid: amountPaid,
		ExpiresAt:  now.Unix() + duration,
	}
	s.store.Put(account, acc)
	return nil
}

// GetPremiumStatus re-derives the effective flag; the stored boolean is
// never trusted past its expiry.
func (s *RewardService) GetPremiumStatus(account string) PremiumInfo {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	acc, ok := s.store.Get(account)
	if !ok {
		return PremiumInfo{}
	}
	return PremiumInfo{
		Active:     acc.Premium.Active(now),
		AmountPaid: acc.Premium.AmountPaid,
		ExpiresAt:  acc.Premium.ExpiresAt,
	}
}
