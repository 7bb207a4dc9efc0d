package services

import "fitledger/internal/models"

// RegisterReferral sets the one-way, permanent referrer edge for an
// account and pays the flat signup bonus to both parties.
func (s *RewardService) RegisterReferral(account, referrer string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.checkPaused(); err != nil {
		return err
	}
	if referrer == "" || referrer == account {
		return ErrInvalidReferrer
	}

	acc := s.store.GetOrCreate(account)
	if acc.Referral.Referrer != "" {
		return ErrAlreadyReferred
	}

	bonus := models.Amount(s.conf.Engine.SignupBonus)
	if bonus > 0 {
		if err := s.token.Mint(account, bonus); err != nil {
			return err
		}
		if err := s.token.Mint(referrer, bonus); err != nil {
			return err
		}
	}

	acc.Referral.Referrer = referrer
	s.store.Put(account, acc)

	ref := s.store.GetOrCreate(referrer)
	ref.Referral.ReferredCount++
	ref.Referral.Referrals = append(ref.Referral.Referrals, account)
	s.store.Put(referrer, ref)

	return nil
}

func (s *RewardService) GetReferralInfo(account string) ReferralInfo {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	acc, ok := s.store.Get(account)
	if !ok {
		return ReferralInfo{}
	}
	return ReferralInfo{
		Referrer:      acc.Referral.Referrer,
		EarnedBonus:   acc.Referral.EarnedBonus,
		ReferredCount: acc.Referral.ReferredCount,
	}
}

func (s *RewardService) GetUserReferrals(account string) []string {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	acc, ok := s.store.Get(account)
	if !ok {
		return []string{}
	}
	if acc.Referral.Referrals == nil {
		return []string{}
	}
	return acc.Referral.Referrals
}
