package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

// EngineConfig fixes the economic constants of the reward engine.
// The reference deployments drifted across versions (decay rate, burn fee,
// activity thresholds); the canonical values live here, not in code.
// All monetary fields are nanotokens (1e9 per token).
type EngineConfig struct {
	// Staking
	UnstakeBurnBps     int64 `yaml:"unstakeBurnBps" validate:"min:0|max:10000"`
	ClaimDustThreshold int64 `yaml:"claimDustThreshold" validate:"min:0"`

	// Activity
	BaseStepsRate     int64         `yaml:"baseStepsRate" validate:"min:0"` // per steps unit
	BaseMetsRate      int64         `yaml:"baseMetsRate" validate:"min:0"`  // per METs unit
	StepsUnit         int64         `yaml:"stepsUnit" validate:"min:1"`
	MetsUnit          int64         `yaml:"metsUnit" validate:"min:1"`
	RateDecayBps      int64         `yaml:"rateDecayBps" validate:"min:0|max:10000"` // per whole day, compounding
	MaxDailySteps     int64         `yaml:"maxDailySteps" validate:"min:1"`
	MaxDailyMets      int64         `yaml:"maxDailyMets" validate:"min:1"`
	MaxStepsPerMinute int64         `yaml:"maxStepsPerMinute" validate:"min:1"`
	MaxMetsPerMinute  int64         `yaml:"maxMetsPerMinute" validate:"min:1"`
	RecordInterval    time.Duration `yaml:"recordInterval" validate:"min:1"`

	// Referral
	ReferralBonusBps int64 `yaml:"referralBonusBps" validate:"min:0|max:10000"`
	SignupBonus      int64 `yaml:"signupBonus" validate:"min:0"` // paid to both parties once

	// Premium
	PremiumMonthlyPrice int64 `yaml:"premiumMonthlyPrice" validate:"min:1"`
	PremiumYearlyPrice  int64 `yaml:"premiumYearlyPrice" validate:"min:1"`

	// Meal scoring
	MealClaimInterval  time.Duration `yaml:"mealClaimInterval" validate:"min:1"`
	MealRewardPerPoint int64         `yaml:"mealRewardPerPoint" validate:"min:0"` // per score point
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Engine      EngineConfig  `yaml:"engine"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
