package models

import (
	"errors"
	"sync"
)

// CustodyAccount holds staked principal while locks run.
const CustodyAccount = "__custody"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTokenPaused         = errors.New("token transfers paused")
)

// TokenLedger is the capability required from the external fungible token.
// The engine never sees supply caps, allowances or burn mechanics; it only
// mints rewards, moves principal and respects the token's own pause gate.
type TokenLedger interface {
	Mint(to string, amount Amount) error
	Transfer(from, to string, amount Amount) error
	BalanceOf(owner string) Amount
	Paused() bool
}

// TokenSnapshotter is implemented by token ledgers whose balances are
// owned by this process and belong in the persistence snapshot.
type TokenSnapshotter interface {
	GetData() map[string]Amount
	PutData(balances map[string]Amount)
}

// MemoryToken is the in-process ledger used by the daemon and its tests.
type MemoryToken struct {
	mu       sync.RWMutex
	balances map[string]Amount
	paused   bool
}

func NewMemoryToken() *MemoryToken {
	return &MemoryToken{
		balances: make(map[string]Amount),
	}
}

// NewTokenLedger is the injection point for the token collaborator. The
// daemon runs against the in-process ledger; a deployment bridging to an
// external token swaps this provider.
func NewTokenLedger() TokenLedger {
	return NewMemoryToken()
}

func (t *MemoryToken) Mint(to string, amount Amount) error {
	if amount <= 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		return ErrTokenPaused
	}
	t.balances[to] += amount
	return nil
}

func (t *MemoryToken) Transfer(from, to string, amount Amount) error {
	if amount <= 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		return ErrTokenPaused
	}
	if t.balances[from] < amount {
		return ErrInsufficientBalance
	}
	t.balances[from] -= amount
	t.balances[to] += amount
	return nil
}

func (t *MemoryToken) BalanceOf(owner string) Amount {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.balances[owner]
}

func (t *MemoryToken) Paused() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.paused
}

func (t *MemoryToken) SetPaused(paused bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paused = paused
}

func (t *MemoryToken) GetData() map[string]Amount {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make(map[string]Amount, len(t.balances))
	for owner, bal := range t.balances {
		result[owner] = bal
	}
	return result
}

func (t *MemoryToken) PutData(balances map[string]Amount) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances = make(map[string]Amount, len(balances))
	for owner, bal := range balances {
		t.balances[owner] = bal
	}
}
