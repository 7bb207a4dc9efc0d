package services

import (
	"time"

	"fitledger/internal/models"
	"fitledger/internal/structures"
)

// fakeClock lets tests advance the engine's single per-operation `now`.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// Mid-day UTC so that advancing a few hours never crosses a day boundary
// by accident.
var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *structures.Config {
	return &structures.Config{
		Engine: structures.EngineConfig{
			UnstakeBurnBps:      0,
			ClaimDustThreshold:  1_000_000,
			BaseStepsRate:       1_000_000_000,
			BaseMetsRate:        500_000_000,
			StepsUnit:           1000,
			MetsUnit:            5,
			RateDecayBps:        10,
			MaxDailySteps:       50_000,
			MaxDailyMets:        500,
			MaxStepsPerMinute:   300,
			MaxMetsPerMinute:    50,
			RecordInterval:      60 * time.Second,
			ReferralBonusBps:    100,
			SignupBonus:         100_000_000,
			PremiumMonthlyPrice: 10_000_000_000,
			PremiumYearlyPrice:  100_000_000_000,
			MealClaimInterval:   2 * time.Hour,
			MealRewardPerPoint:  10_000_000,
		},
	}
}

func newTestService() (*RewardService, *models.MemoryToken, *fakeClock) {
	token := models.NewMemoryToken()
	clock := &fakeClock{t: testStart}
	svc := NewRewardService(testConfig(), models.NewAccountStore(), token).(*RewardService)
	svc.now = clock.Now
	svc.rate.LastDecayDay = models.DayIndex(testStart)
	return svc, token, clock
}

// fund credits an account on the in-memory token so it can stake.
func fund(token *models.MemoryToken, account string, tokens int64) {
	_ = token.Mint(account, models.Amount(tokens*models.NanoPerToken))
}

// grantPremium puts an account on the monthly paid tier.
func grantPremium(svc *RewardService, account string) {
	_ = svc.SetPremiumStatus(account, true, models.Amount(svc.conf.Engine.PremiumMonthlyPrice))
}

// seedActivity backdates the last accepted recording so a submission with
// `minutes` worth of per-minute budget passes the rate limit.
func seedActivity(svc *RewardService, account string, minutes int64) {
	acc := svc.store.GetOrCreate(account)
	acc.Activity.LastUpdated = svc.now().Unix() - minutes*60
	acc.Activity.LastDayReset = models.DayIndex(svc.now())
	svc.store.Put(account, acc)
}
