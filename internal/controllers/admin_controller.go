package controllers

import (
	"net/http"

	"fitledger/internal/providers"
	"fitledger/internal/services"
)

// AdminController exposes the owner-only surface: pause, parameter
// setters, meal-score payouts and the migration pass. Authentication of
// the caller is established upstream of this process.
type AdminController struct {
	logger  providers.Logger
	service services.RewardServiceInterface
	metrics providers.MetricsProviderInterface
}

func NewAdminController(logger providers.Logger, service services.RewardServiceInterface, metrics providers.MetricsProviderInterface) *AdminController {
	return &AdminController{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

func (ac *AdminController) EmergencyPause(w http.ResponseWriter, r *http.Request) {
	ac.service.EmergencyPause()
	w.WriteHeader(http.StatusOK)
}

func (ac *AdminController) EmergencyUnpause(w http.ResponseWriter, r *http.Request) {
	ac.service.EmergencyUnpause()
	w.WriteHeader(http.StatusOK)
}

type multiplierRequest struct {
	Months     int   `json:"months"`
	Multiplier int64 `json:"multiplier"`
}

func (ac *AdminController) SetLockPeriodMultiplier(w http.ResponseWriter, r *http.Request) {
	var payload multiplierRequest
	if !decode(w, r, &payload) {
		return
	}
	if err := ac.service.SetLockPeriodMultiplier(payload.Months, payload.Multiplier); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type mealRequest struct {
	Account string `json:"account"`
	Score   int    `json:"score"`
}

func (ac *AdminController) ClaimMealRewards(w http.ResponseWriter, r *http.Request) {
	var payload mealRequest
	if !decode(w, r, &payload) {
		return
	}
	reward, err := ac.service.ClaimMealRewards(payload.Account, payload.Score)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.metrics.AddRewardMinted("meal", reward.ToTokens())
	writeJSON(w, http.StatusOK, map[string]int64{"reward": reward.ToNano()})
}

type migrateRequest struct {
	Account string `json:"account"`
}

func (ac *AdminController) MigrateUserData(w http.ResponseWriter, r *http.Request) {
	var payload migrateRequest
	if !decode(w, r, &payload) {
		return
	}
	if err := ac.service.MigrateUserData(payload.Account); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type bulkMigrateRequest struct {
	Accounts []string `json:"accounts"`
}

func (ac *AdminController) BulkMigrateUserData(w http.ResponseWriter, r *http.Request) {
	var payload bulkMigrateRequest
	if !decode(w, r, &payload) {
		return
	}
	report := ac.service.BulkMigrateUserData(payload.Accounts)
	writeJSON(w, http.StatusOK, report)
}
