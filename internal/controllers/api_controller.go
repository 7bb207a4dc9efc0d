package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"fitledger/internal/models"
	"fitledger/internal/providers"
	"fitledger/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.RewardServiceInterface
	token   models.TokenLedger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.RewardServiceInterface, token models.TokenLedger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		token:   token,
		cache:   cache,
		metrics: metrics,
	}
}

// statusForError maps the engine's typed precondition failures onto HTTP
// statuses. Every failure is local to one caller's one operation.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrContractPaused), errors.Is(err, models.ErrTokenPaused):
		return http.StatusServiceUnavailable
	case errors.Is(err, services.ErrUnauthorizedAccess):
		return http.StatusForbidden
	case errors.Is(err, services.ErrUnknownAccount), errors.Is(err, services.ErrStakeNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMealClaimTooSoon):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, payload any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// --- staking ---

type stakeRequest struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"` // nanotokens
	LockMonths int    `json:"lock_months"`
}

func (ac *ApiController) Stake(w http.ResponseWriter, r *http.Request) {
	var payload stakeRequest
	if !decode(w, r, &payload) {
		return
	}
	stake, err := ac.service.Stake(payload.Account, models.Amount(payload.Amount), payload.LockMonths)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stake)
}

type stakeIndexRequest struct {
	Account string `json:"account"`
	Index   int    `json:"index"`
}

func (ac *ApiController) Unstake(w http.ResponseWriter, r *http.Request) {
	var payload stakeIndexRequest
	if !decode(w, r, &payload) {
		return
	}
	returned, err := ac.service.Unstake(payload.Account, payload.Index)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"returned": returned.ToNano()})
}

type restakeRequest struct {
	Account    string `json:"account"`
	Index      int    `json:"index"`
	LockMonths int    `json:"lock_months"`
}

func (ac *ApiController) Restake(w http.ResponseWriter, r *http.Request) {
	var payload restakeRequest
	if !decode(w, r, &payload) {
		return
	}
	stake, err := ac.service.Restake(payload.Account, payload.Index, payload.LockMonths)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stake)
}

func (ac *ApiController) ClaimStakingRewards(w http.ResponseWriter, r *http.Request) {
	var payload stakeIndexRequest
	if !decode(w, r, &payload) {
		return
	}
	reward, err := ac.service.ClaimStakingRewards(payload.Account, payload.Index)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.metrics.AddRewardMinted("staking", reward.ToTokens())
	writeJSON(w, http.StatusOK, map[string]int64{"reward": reward.ToNano()})
}

type accountRequest struct {
	Account string `json:"account"`
}

func (ac *ApiController) ClaimAllStakingRewards(w http.ResponseWriter, r *http.Request) {
	var payload accountRequest
	if !decode(w, r, &payload) {
		return
	}
	reward, err := ac.service.ClaimAllStakingRewards(payload.Account)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.metrics.AddRewardMinted("staking", reward.ToTokens())
	writeJSON(w, http.StatusOK, map[string]int64{"reward": reward.ToNano()})
}

func (ac *ApiController) GetStake(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	index := cast.ToInt(r.URL.Query().Get("index"))
	stake, err := ac.service.GetUserStake(account, index)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stake)
}

func (ac *ApiController) GetStakes(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	ac.serveFromCacheOrCompute(w, "stakes:"+account, func() (any, error) {
		return ac.service.GetUserStakes(account), nil
	})
}

func (ac *ApiController) GetStakeCount(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	writeJSON(w, http.StatusOK, map[string]int{"count": ac.service.GetUserStakeCount(account)})
}

// --- activity ---

type activityRequest struct {
	Account string `json:"account"`
	Steps   int64  `json:"steps"`
	Mets    int64  `json:"mets"`
}

func (ac *ApiController) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var payload activityRequest
	if !decode(w, r, &payload) {
		return
	}
	result, err := ac.service.RecordActivity(payload.Account, payload.Steps, payload.Mets)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.metrics.AddRewardMinted("steps", result.StepsReward.ToTokens())
	ac.metrics.AddRewardMinted("mets", result.MetsReward.ToTokens())
	ac.metrics.AddRewardMinted("referral", result.ReferralBonus.ToTokens())
	writeJSON(w, http.StatusCreated, result)
}

func (ac *ApiController) GetTodayActivity(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	writeJSON(w, http.StatusOK, ac.service.GetTodayUserActivity(account))
}

func (ac *ApiController) PreviewActivityRewards(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	steps := cast.ToInt64(r.URL.Query().Get("steps"))
	mets := cast.ToInt64(r.URL.Query().Get("mets"))
	result, err := ac.service.CalculateActivityRewards(account, steps, mets)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- referral ---

type referralRequest struct {
	Account  string `json:"account"`
	Referrer string `json:"referrer"`
}

func (ac *ApiController) RegisterReferral(w http.ResponseWriter, r *http.Request) {
	var payload referralRequest
	if !decode(w, r, &payload) {
		return
	}
	if err := ac.service.RegisterReferral(payload.Account, payload.Referrer); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) GetReferralInfo(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	writeJSON(w, http.StatusOK, ac.service.GetReferralInfo(account))
}

func (ac *ApiController) GetReferrals(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	ac.serveFromCacheOrCompute(w, "referrals:"+account, func() (any, error) {
		return ac.service.GetUserReferrals(account), nil
	})
}

// --- premium ---

type premiumRequest struct {
	Account    string `json:"account"`
	Premium    bool   `json:"premium"`
	AmountPaid int64  `json:"amount_paid"` // nanotokens
}

func (ac *ApiController) SetPremiumStatus(w http.ResponseWriter, r *http.Request) {
	var payload premiumRequest
	if !decode(w, r, &payload) {
		return
	}
	if err := ac.service.SetPremiumStatus(payload.Account, payload.Premium, models.Amount(payload.AmountPaid)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (ac *ApiController) GetPremiumStatus(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	writeJSON(w, http.StatusOK, ac.service.GetPremiumStatus(account))
}

// --- balance ---

func (ac *ApiController) GetBalance(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	writeJSON(w, http.StatusOK, map[string]int64{"balance": ac.token.BalanceOf(account).ToNano()})
}
