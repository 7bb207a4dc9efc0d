package services

import "errors"

// Every engine failure is a typed precondition violation surfaced to the
// caller with zero state mutation. Callers retry by re-issuing the
// operation once the violated condition no longer holds.
var (
	ErrInvalidLockPeriod    = errors.New("invalid lock period")
	ErrZeroAmount           = errors.New("zero amount not allowed")
	ErrLockPeriodActive     = errors.New("lock period still active")
	ErrUnauthorizedAccess   = errors.New("unauthorized access")
	ErrInvalidActivityInput = errors.New("invalid activity input")
	ErrInvalidReferrer      = errors.New("invalid referrer")
	ErrAlreadyReferred      = errors.New("account already referred")
	ErrNoRewardsAvailable   = errors.New("no rewards available")
	ErrInvalidPremiumAmount = errors.New("invalid premium amount")
	ErrInvalidMealScore     = errors.New("invalid meal score")
	ErrMealClaimTooSoon     = errors.New("meal claim too soon")
	ErrContractPaused       = errors.New("engine paused")
	ErrStakeNotFound        = errors.New("stake not found")
	ErrUnknownAccount       = errors.New("unknown account")
	ErrInvalidMultiplier    = errors.New("invalid multiplier")
)
