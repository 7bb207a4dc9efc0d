package services

import "fitledger/internal/models"

// SetLockPeriodMultiplier overrides the default months-as-multiplier table
// for one lock period.
func (s *RewardService) SetLockPeriodMultiplier(months int, multiplier int64) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if !models.IsValidLockMonths(months) {
		return ErrInvalidLockPeriod
	}
	if multiplier <= 0 {
		return ErrInvalidMultiplier
	}
	s.admin.Multipliers[months] = multiplier
	return nil
}

// EmergencyPause blocks every state-mutating entry point until unpaused.
// Read accessors keep working.
func (s *RewardService) EmergencyPause() {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.admin.Paused = true
}

func (s *RewardService) EmergencyUnpause() {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.admin.Paused = false
}
