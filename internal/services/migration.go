package services

import (
	"fmt"
	"sort"
	"time"

	"fitledger/internal/models"
)

// MigrateUserData is the idempotent repair pass run after a schema change:
// backfill zero timestamps, refresh a stale day bucket, and recompute the
// referral fan-out from the actual inbound edges. Rerunning it against a
// healthy record is a no-op.
func (s *RewardService) MigrateUserData(account string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.migrateLocked(account, s.now())
}

// BulkMigrateUserData processes each account independently; one account's
// failure never aborts the batch.
func (s *RewardService) BulkMigrateUserData(accounts []string) MigrationReport {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	now := s.now()

	var report MigrationReport
	for _, account := range accounts {
		if err := s.migrateLocked(account, now); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", account, err))
			continue
		}
		report.Migrated++
	}
	return report
}

func (s *RewardService) migrateLocked(account string, now time.Time) error {
	return s.store.Mutate(func(data map[string]*models.Account) error {
		acc, ok := data[account]
		if !ok {
			return ErrUnknownAccount
		}

		nowSec := now.Unix()
		for i := range acc.Stakes {
			if acc.Stakes[i].StartTime == 0 {
				acc.Stakes[i].StartTime = nowSec
			}
			if acc.Stakes[i].LastClaimed == 0 {
				acc.Stakes[i].LastClaimed = nowSec
			}
			if acc.Stakes[i].LockMonths == 0 && acc.Stakes[i].LockDuration > 0 {
				acc.Stakes[i].LockMonths = int(acc.Stakes[i].LockDuration / models.MonthSeconds)
			}
			if acc.NextStakeID <= acc.Stakes[i].ID {
				acc.NextStakeID = acc.Stakes[i].ID + 1
			}
		}

		if acc.Activity.LastUpdated == 0 && (acc.Activity.DailySteps > 0 || acc.Activity.DailyMets > 0) {
			acc.Activity.LastUpdated = nowSec
		}
		if acc.Activity.LastDayReset < models.DayIndex(now) {
			acc.Activity.DailySteps = 0
			acc.Activity.DailyMets = 0
			acc.Activity.LastDayReset = models.DayIndex(now)
		}

		// referredCount drifted in the prior schema; the inbound edges are
		// the source of truth.
		var count int64
		var referrals []string
		for id, other := range data {
			if other.Referral.Referrer == account {
				count++
				referrals = append(referrals, id)
			}
		}
		sort.Strings(referrals)
		acc.Referral.ReferredCount = count
		acc.Referral.Referrals = referrals

		return nil
	})
}
