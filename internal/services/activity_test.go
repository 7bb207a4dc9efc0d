package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitledger/internal/models"
)

func TestRecordActivity_FirstSubmission(t *testing.T) {
	svc, token, _ := newTestService()

	payout, err := svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)

	assert.Equal(t, models.Amount(300_000_000), payout.StepsReward)
	assert.Equal(t, models.Amount(0), payout.MetsReward)
	assert.Equal(t, models.Amount(300_000_000), payout.Total)
	assert.Equal(t, payout.Total, token.BalanceOf("u1"))

	rec := svc.GetTodayUserActivity("u1")
	assert.Equal(t, int64(300), rec.DailySteps)
}

func TestRecordActivity_ThousandStepsPaysOneToken(t *testing.T) {
	svc, token, _ := newTestService()
	seedActivity(svc, "u1", 10)

	payout, err := svc.RecordActivity("u1", 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(models.NanoPerToken), payout.Total)
	assert.Equal(t, models.Amount(models.NanoPerToken), token.BalanceOf("u1"))
}

func TestRecordActivity_RejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RecordActivity("u1", -1, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)
	_, err = svc.RecordActivity("u1", 0, -3)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)
	_, err = svc.RecordActivity("u1", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)
}

func TestRecordActivity_RateLimit(t *testing.T) {
	svc, _, clock := newTestService()

	_, err := svc.RecordActivity("u1", 100, 0)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	_, err = svc.RecordActivity("u1", 100, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)

	clock.Advance(30 * time.Second)
	_, err = svc.RecordActivity("u1", 100, 0)
	assert.NoError(t, err)
}

func TestRecordActivity_PerMinuteBounds(t *testing.T) {
	svc, _, _ := newTestService()

	// First submission gets a single minute's budget.
	_, err := svc.RecordActivity("u1", 301, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)

	// Bounds scale with elapsed whole minutes.
	seedActivity(svc, "u2", 10)
	_, err = svc.RecordActivity("u2", 3001, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)
	_, err = svc.RecordActivity("u2", 3000, 0)
	assert.NoError(t, err)

	seedActivity(svc, "u3", 10)
	_, err = svc.RecordActivity("u3", 0, 501)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)
}

func TestRecordActivity_DailyCapMarginalReward(t *testing.T) {
	svc, token, _ := newTestService()

	acc := svc.store.GetOrCreate("u1")
	acc.Activity.DailySteps = 49_900
	acc.Activity.LastUpdated = testStart.Unix() - 600
	acc.Activity.LastDayReset = models.DayIndex(testStart)
	svc.store.Put("u1", acc)

	// Only the 100 steps below the daily cap pay out.
	payout, err := svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(100_000_000), payout.Total)
	assert.Equal(t, payout.Total, token.BalanceOf("u1"))

	// Counters keep counting past the cap.
	rec := svc.GetTodayUserActivity("u1")
	assert.Equal(t, int64(50_200), rec.DailySteps)

	// Fully over the cap, further submissions pay nothing.
	seedActivity(svc, "u1", 10)
	payout, err = svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), payout.Total)
}

func TestRecordActivity_MetsRequirePremium(t *testing.T) {
	svc, token, _ := newTestService()

	payout, err := svc.RecordActivity("u1", 0, 50)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), payout.Total)
	assert.Equal(t, models.Amount(0), token.BalanceOf("u1"))

	grantPremium(svc, "u2")
	seedActivity(svc, "u2", 1)
	payout, err = svc.RecordActivity("u2", 0, 50)
	require.NoError(t, err)
	// 50 METs at 0.5 token per 5-MET unit.
	assert.Equal(t, models.Amount(5_000_000_000), payout.MetsReward)
	assert.Equal(t, payout.MetsReward, payout.Total)
}

func TestRecordActivity_MetsStopPayingWhenPremiumLapses(t *testing.T) {
	svc, _, clock := newTestService()
	svc.conf.Engine.RateDecayBps = 0
	grantPremium(svc, "u1")

	payout, err := svc.RecordActivity("u1", 0, 50)
	require.NoError(t, err)
	assert.True(t, payout.MetsReward > 0)

	clock.Advance(31 * 24 * time.Hour)
	payout, err = svc.RecordActivity("u1", 0, 50)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), payout.MetsReward)
}

func TestRecordActivity_DayRollover(t *testing.T) {
	svc, _, clock := newTestService()
	svc.conf.Engine.RateDecayBps = 0

	_, err := svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)

	clock.Advance(13 * time.Hour)
	rec := svc.GetTodayUserActivity("u1")
	assert.Equal(t, int64(0), rec.DailySteps)

	// The new day starts from zero, so yesterday's counters never eat
	// into today's cap.
	payout, err := svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(300_000_000), payout.Total)
	rec = svc.GetTodayUserActivity("u1")
	assert.Equal(t, int64(300), rec.DailySteps)
}

func TestRecordActivity_RateDecayCompounds(t *testing.T) {
	svc, _, clock := newTestService()

	clock.Advance(24 * time.Hour)
	payout, err := svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)
	// One day of 0.1% decay: 1e9 * 9990 / 10000 per thousand steps.
	assert.Equal(t, models.Amount(299_700_000), payout.Total)
	assert.Equal(t, int64(999_000_000), svc.rate.BaseStepsRate)
	assert.Equal(t, models.DayIndex(clock.Now()), svc.rate.LastDecayDay)

	clock.Advance(24 * time.Hour)
	payout, err = svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(299_400_300), payout.Total)
	assert.Equal(t, int64(998_001_000), svc.rate.BaseStepsRate)
}

func TestRecordActivity_ReferralBonus(t *testing.T) {
	svc, token, _ := newTestService()
	require.NoError(t, svc.RegisterReferral("u1", "ref"))

	seedActivity(svc, "u1", 10)
	payout, err := svc.RecordActivity("u1", 1000, 0)
	require.NoError(t, err)

	bonus := models.Amount(10_000_000) // 1% of one token
	assert.Equal(t, bonus, payout.ReferralBonus)

	signup := models.Amount(100_000_000)
	assert.Equal(t, signup+models.NanoPerToken, token.BalanceOf("u1"))
	assert.Equal(t, signup+bonus, token.BalanceOf("ref"))
	assert.Equal(t, bonus, svc.GetReferralInfo("ref").EarnedBonus)
}

func TestRecordActivity_NoBonusWithoutReferrer(t *testing.T) {
	svc, _, _ := newTestService()

	payout, err := svc.RecordActivity("u1", 300, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(0), payout.ReferralBonus)
}

func TestRecordActivity_RejectedWhilePaused(t *testing.T) {
	svc, _, _ := newTestService()
	svc.EmergencyPause()

	_, err := svc.RecordActivity("u1", 100, 0)
	assert.ErrorIs(t, err, ErrContractPaused)
}

func TestCalculateActivityRewards_PureView(t *testing.T) {
	svc, token, _ := newTestService()

	preview, err := svc.CalculateActivityRewards("u1", 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(models.NanoPerToken), preview.Total)

	// No account was created, no balance moved, no counters changed.
	assert.Equal(t, 0, svc.store.Len())
	assert.Equal(t, models.Amount(0), token.BalanceOf("u1"))

	// The preview ignores rate limits and per-minute bounds.
	_, err = svc.CalculateActivityRewards("u1", 100_000, 0)
	assert.NoError(t, err)

	_, err = svc.CalculateActivityRewards("u1", -1, 0)
	assert.ErrorIs(t, err, ErrInvalidActivityInput)
}

func TestCalculateActivityRewards_MatchesRecord(t *testing.T) {
	svc, _, _ := newTestService()
	seedActivity(svc, "u1", 10)

	preview, err := svc.CalculateActivityRewards("u1", 1000, 0)
	require.NoError(t, err)
	recorded, err := svc.RecordActivity("u1", 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, recorded.Total, preview.Total)
}

func TestCalculateActivityRewards_ReflectsPendingDecay(t *testing.T) {
	svc, _, clock := newTestService()

	clock.Advance(24 * time.Hour)
	preview, err := svc.CalculateActivityRewards("u1", 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(999_000_000), preview.Total)

	// Previewing must not persist the decayed rate.
	assert.Equal(t, int64(1_000_000_000), svc.rate.BaseStepsRate)
}

func TestGetTodayUserActivity_UnknownAccount(t *testing.T) {
	svc, _, _ := newTestService()

	rec := svc.GetTodayUserActivity("nobody")
	assert.Equal(t, int64(0), rec.DailySteps)
	assert.Equal(t, models.DayIndex(testStart), rec.LastDayReset)
}
