package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitledger/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/fitledger.dat",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Engine: structures.EngineConfig{
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

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_BurnFeeOutOfRange(t *testing.T) {
	c := validConfig()
	c.Engine.UnstakeBurnBps = 10_001
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MonthlyPriceMustBeBelowYearly(t *testing.T) {
	c := validConfig()
	c.Engine.PremiumMonthlyPrice = c.Engine.PremiumYearlyPrice
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
