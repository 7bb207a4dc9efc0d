package services

import (
	"sync"
	"time"

	"fitledger/internal/models"
	"fitledger/internal/structures"
)

// ActivityPayout is the breakdown of one accepted activity submission.
type ActivityPayout struct {
	StepsReward   models.Amount `json:"steps_reward"`
	MetsReward    models.Amount `json:"mets_reward"`
	Total         models.Amount `json:"total"`
	ReferralBonus models.Amount `json:"referral_bonus"`
}

// ReferralInfo mirrors the stored edge. ReferredCount is meaningful only
// when the account is itself a referrer.
type ReferralInfo struct {
	Referrer      string        `json:"referrer,omitempty"`
	EarnedBonus   models.Amount `json:"earned_bonus"`
	ReferredCount int64         `json:"referred_count"`
}

// PremiumInfo carries the raw record plus the effective (lazily expired)
// status derived at read time.
type PremiumInfo struct {
	Active     bool          `json:"active"`
	AmountPaid models.Amount `json:"amount_paid"`
	ExpiresAt  int64         `json:"expires_at"`
}

// MigrationReport summarizes one bulk repair pass.
type MigrationReport struct {
	Migrated int      `json:"migrated"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// LedgerStats feeds the health endpoint and prometheus gauges.
type LedgerStats struct {
	Accounts    int           `json:"accounts"`
	Stakes      int           `json:"stakes"`
	TotalStaked models.Amount `json:"total_staked"`
	Paused      bool          `json:"paused"`
}

type RewardServiceInterface interface {
	Stake(account string, amount models.Amount, lockMonths int) (models.Stake, error)
	Unstake(account string, index int) (models.Amount, error)
	Restake(account string, index int, newLockMonths int) (models.Stake, error)
	ClaimStakingRewards(account string, index int) (models.Amount, error)
	ClaimAllStakingRewards(account string) (models.Amount, error)
	GetUserStake(account string, index int) (models.Stake, error)
	GetUserStakes(account string) []models.Stake
	GetUserStakeCount(account string) int

	RecordActivity(account string, steps, mets int64) (ActivityPayout, error)
	GetTodayUserActivity(account string) models.ActivityRecord
	CalculateActivityRewards(account string, steps, mets int64) (ActivityPayout, error)

	RegisterReferral(account, referrer string) error
	GetReferralInfo(account string) ReferralInfo
	GetUserReferrals(account string) []string

	SetPremiumStatus(account string, isPremium bool, amountPaid models.Amount) error
	GetPremiumStatus(account string) PremiumInfo

	ClaimMealRewards(account string, score int) (models.Amount, error)

	SetLockPeriodMultiplier(months int, multiplier int64) error
	EmergencyPause()
	EmergencyUnpause()

	MigrateUserData(account string) error
	BulkMigrateUserData(accounts []string) MigrationReport

	GetSnapshot() *models.Snapshot
	PutSnapshot(snap *models.Snapshot)
	Stats() LedgerStats
}

// RewardService is the reward/stake accounting engine. Every externally
// visible operation runs to completion under opMu, samples the clock
// exactly once, and validates all preconditions before any mutation.
type RewardService struct {
	opMu  sync.Mutex
	conf  *structures.Config
	store *models.AccountStore
	token models.TokenLedger

	rate  models.RateState
	admin models.AdminState

	now func() time.Time
}

func NewRewardService(conf *structures.Config, store *models.AccountStore, token models.TokenLedger) RewardServiceInterface {
	return &RewardService{
		conf:  conf,
		store: store,
		token: token,
		rate: models.RateState{
			BaseStepsRate: conf.Engine.BaseStepsRate,
			BaseMetsRate:  conf.Engine.BaseMetsRate,
			LastDecayDay:  models.DayIndex(time.Now()),
		},
		admin: models.AdminState{
			Multipliers: make(map[int]int64),
		},
		now: time.Now,
	}
}

// checkPaused gates every state-mutating entry point on both the engine
// pause flag and the token collaborator's own pause.
func (s *RewardService) checkPaused() error {
	if s.admin.Paused || s.token.Paused() {
		return ErrContractPaused
	}
	return nil
}

func (s *RewardService) multiplier(lockMonths int) int64 {
	if m, ok := s.admin.Multipliers[lockMonths]; ok {
		return m
	}
	return int64(lockMonths)
}

func (s *RewardService) premiumActive(acc *models.Account, now time.Time) bool {
	return acc.Premium.Active(now)
}

func (s *RewardService) Stats() LedgerStats {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return LedgerStats{
		Accounts:    s.store.Len(),
		Stakes:      s.store.StakeCount(),
		TotalStaked: s.token.BalanceOf(models.CustodyAccount),
		Paused:      s.admin.Paused,
	}
}

func (s *RewardService) GetSnapshot() *models.Snapshot {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	snap := &models.Snapshot{
		Version:  models.SnapshotVersion,
		Accounts: s.store.GetData(),
		Rate:     s.rate,
		Admin: models.AdminState{
			Paused:      s.admin.Paused,
			Multipliers: make(map[int]int64, len(s.admin.Multipliers)),
		},
	}
	for k, v := range s.admin.Multipliers {
		snap.Admin.Multipliers[k] = v
	}
	if snapshotter, ok := s.token.(models.TokenSnapshotter); ok {
		snap.Balances = snapshotter.GetData()
	}
	return snap
}

func (s *RewardService) PutSnapshot(snap *models.Snapshot) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.store.PutData(snap.Accounts)
	if snap.Rate.BaseStepsRate > 0 || snap.Rate.BaseMetsRate > 0 {
		s.rate = snap.Rate
	}
	s.admin.Paused = snap.Admin.Paused
	s.admin.Multipliers = make(map[int]int64, len(snap.Admin.Multipliers))
	for k, v := range snap.Admin.Multipliers {
		s.admin.Multipliers[k] = v
	}
	if snapshotter, ok := s.token.(models.TokenSnapshotter); ok && snap.Balances != nil {
		snapshotter.PutData(snap.Balances)
	}
}
