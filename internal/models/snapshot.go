package models

// RateState is the global base-rate singleton. Decay is applied lazily,
// compounding once per elapsed whole day; rates never increase.
type RateState struct {
	BaseStepsRate int64 `json:"base_steps_rate"`
	BaseMetsRate  int64 `json:"base_mets_rate"`
	LastDecayDay  int64 `json:"last_decay_day"`
}

// AdminState is the global pause flag plus the owner-overridable
// lock-period multiplier table.
type AdminState struct {
	Paused      bool          `json:"paused"`
	Multipliers map[int]int64 `json:"multipliers,omitempty"`
}

const SnapshotVersion = 2

// Snapshot is the on-disk format for the whole ledger.
type Snapshot struct {
	Version  int                 `json:"version"`
	Accounts map[string]*Account `json:"accounts"`
	Rate     RateState           `json:"rate"`
	Admin    AdminState          `json:"admin"`
	Balances map[string]Amount   `json:"balances"`
}
