package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"fitledger/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FITLEDGER_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "FITLEDGER_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "FITLEDGER_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FITLEDGER_CACHE_SIZE")
	viper.BindEnv("engine.rateDecayBps", "FITLEDGER_RATE_DECAY_BPS")
	viper.BindEnv("engine.unstakeBurnBps", "FITLEDGER_UNSTAKE_BURN_BPS")

	setEngineDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FitLedger"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

// setEngineDefaults pins the canonical economic constants. The reference
// behavior drifted across versions; these values are the fixed choice and
// a deployment overrides them only through the config file.
func setEngineDefaults() {
	viper.SetDefault("engine.unstakeBurnBps", 0)
	viper.SetDefault("engine.claimDustThreshold", 1_000_000) // 0.001 token
	viper.SetDefault("engine.baseStepsRate", 1_000_000_000)  // 1 token per steps unit
	viper.SetDefault("engine.baseMetsRate", 500_000_000)     // 0.5 token per METs unit
	viper.SetDefault("engine.stepsUnit", 1000)
	viper.SetDefault("engine.metsUnit", 5)
	viper.SetDefault("engine.rateDecayBps", 10) // 0.1% per day
	viper.SetDefault("engine.maxDailySteps", 50_000)
	viper.SetDefault("engine.maxDailyMets", 500)
	viper.SetDefault("engine.maxStepsPerMinute", 300)
	viper.SetDefault("engine.maxMetsPerMinute", 50)
	viper.SetDefault("engine.recordInterval", "60s")
	viper.SetDefault("engine.referralBonusBps", 100) // 1%
	viper.SetDefault("engine.signupBonus", 100_000_000)
	viper.SetDefault("engine.premiumMonthlyPrice", 10_000_000_000)
	viper.SetDefault("engine.premiumYearlyPrice", 100_000_000_000)
	viper.SetDefault("engine.mealClaimInterval", "2h")
	viper.SetDefault("engine.mealRewardPerPoint", 10_000_000) // 0.01 token per point
	viper.SetDefault("cache.ttl", "2s")
}
