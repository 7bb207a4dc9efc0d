package models

import "sync"

// AccountStore owns every per-account record set. Accessors copy records
// out so callers never observe concurrent mutation; Mutate runs a closure
// under the write lock for the engine's validate-then-commit operations.
type AccountStore struct {
	mu   sync.RWMutex
	data map[string]*Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		data: make(map[string]*Account),
	}
}

func (s *AccountStore) Get(id string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.data[id]
	if !ok {
		return nil, false
	}
	return acc.Clone(), true
}

// GetOrCreate returns a copy of the record, creating an empty one first if
// the account is unknown. Records are created implicitly and never deleted.
func (s *AccountStore) GetOrCreate(id string) *Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.data[id]
	if !ok {
		acc = &Account{}
		s.data[id] = acc
	}
	return acc.Clone()
}

func (s *AccountStore) Put(id string, acc *Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = acc.Clone()
}

// Mutate applies fn to the live records under the write lock. fn receives
// the store map directly; it must either complete every mutation or leave
// the records untouched.
func (s *AccountStore) Mutate(fn func(data map[string]*Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *AccountStore) StakeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, acc := range s.data {
		n += len(acc.Stakes)
	}
	return n
}

func (s *AccountStore) GetData() map[string]*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]*Account, len(s.data))
	for id, acc := range s.data {
		result[id] = acc.Clone()
	}
	return result
}

func (s *AccountStore) PutData(data map[string]*Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]*Account, len(data))
	for id, acc := range data {
		if acc == nil {
			continue
		}
		s.data[id] = acc.Clone()
	}
}
