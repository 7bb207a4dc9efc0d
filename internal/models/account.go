package models

import "time"

// Lock periods are expressed in months; the 24-month option is reserved
// for premium accounts.
const (
	MonthSeconds = 30 * 24 * 3600
	YearSeconds  = 365 * 24 * 3600
	DaySeconds   = 24 * 3600

	PremiumLockMonths = 24
)

var ValidLockMonths = []int{1, 3, 6, 12, 24}

func IsValidLockMonths(months int) bool {
	for _, m := range ValidLockMonths {
		if m == months {
			return true
		}
	}
	return false
}

// Stake is a locked principal deposit. ID is a stable per-account handle;
// the position in the slice is transient because removal compacts the list.
type Stake struct {
	ID           uint64 `json:"id"`
	Amount       Amount `json:"amount"`
	StartTime    int64  `json:"start_time"`
	LockDuration int64  `json:"lock_duration"` // seconds
	LastClaimed  int64  `json:"last_claimed"`
	LockMonths   int    `json:"lock_months"`
}

func (s *Stake) Unlocked(now time.Time) bool {
	return now.Unix() >= s.StartTime+s.LockDuration
}

// ActivityRecord holds one account's daily engagement counters. Counters
// are stored uncapped; reward computation caps them separately.
type ActivityRecord struct {
	DailySteps   int64 `json:"daily_steps"`
	DailyMets    int64 `json:"daily_mets"`
	LastUpdated  int64 `json:"last_updated"`
	LastDayReset int64 `json:"last_day_reset"` // day index, unix seconds / 86400
}

// ReferralEdge records who referred this account. ReferredCount counts
// inbound edges on the referrer's own record, not the referee's.
type ReferralEdge struct {
	Referrer      string   `json:"referrer,omitempty"`
	EarnedBonus   Amount   `json:"earned_bonus"`
	ReferredCount int64    `json:"referred_count"`
	Referrals     []string `json:"referrals,omitempty"` // accounts this account referred
}

// PremiumStatus expires lazily: the stored flag is not cleared on expiry,
// readers must derive the effective status through Active.
type PremiumStatus struct {
	IsPremium  bool   `json:"is_premium"`
	AmountPaid Amount `json:"amount_paid"`
	ExpiresAt  int64  `json:"expires_at"`
}

func (p *PremiumStatus) Active(now time.Time) bool {
	return p.IsPremium && now.Unix() < p.ExpiresAt
}

// Account is the full per-account record set: a small growable stake list
// plus exactly one activity, referral and premium record.
type Account struct {
	Stakes      []Stake        `json:"stakes,omitempty"`
	NextStakeID uint64         `json:"next_stake_id,omitempty"`
	Activity    ActivityRecord `json:"activity"`
	Referral    ReferralEdge   `json:"referral"`
	Premium     PremiumStatus  `json:"premium"`
	// LastMealClaim rate-limits admin meal-score payouts.
	LastMealClaim int64 `json:"last_meal_claim,omitempty"`
}

func (a *Account) Clone() *Account {
	cp := *a
	cp.Stakes = make([]Stake, len(a.Stakes))
	copy(cp.Stakes, a.Stakes)
	cp.Referral.Referrals = append([]string(nil), a.Referral.Referrals...)
	return &cp
}

// DayIndex converts a moment to the calendar-day bucket used for daily
// counter resets and rate decay.
func DayIndex(now time.Time) int64 {
	return now.Unix() / DaySeconds
}
