package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitledger/internal/controllers"
	"fitledger/internal/models"
	"fitledger/internal/services"
	"fitledger/internal/structures"
	"fitledger/internal/testutil"
)

func routeTestConfig() *structures.Config {
	return &structures.Config{
		Engine: structures.EngineConfig{
			BaseStepsRate:       1_000_000_000,
			BaseMetsRate:        500_000_000,
			StepsUnit:           1000,
			MetsUnit:            5,
			MaxDailySteps:       50_000,
			MaxDailyMets:        500,
			MaxStepsPerMinute:   300,
			MaxMetsPerMinute:    50,
			RecordInterval:      60 * time.Second,
			PremiumMonthlyPrice: 10_000_000_000,
			PremiumYearlyPrice:  100_000_000_000,
			MealClaimInterval:   2 * time.Hour,
		},
	}
}

func routeTestControllers() (*controllers.ApiController, *controllers.AdminController) {
	conf := routeTestConfig()
	token := models.NewMemoryToken()
	svc := services.NewRewardService(conf, models.NewAccountStore(), token)
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	api := controllers.NewApiController(logger, svc, token, testutil.NoopCache{}, metrics)
	admin := controllers.NewAdminController(logger, svc, metrics)
	return api, admin
}

func TestInitRoutes_RegistersAllEndpoints(t *testing.T) {
	api, admin := routeTestControllers()
	router := InitRoutes(api, admin, routeTestConfig())
	routes := router.GetRoutes()

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	expected := []string{
		"/stake", "/unstake", "/restake", "/stake/claim", "/stake/claim-all",
		"/stake/info", "/stakes", "/stakes/count",
		"/activity", "/activity/today", "/activity/preview",
		"/referral/register", "/referral", "/referrals",
		"/premium/set", "/premium",
		"/balance",
		"/admin/pause", "/admin/unpause", "/admin/multiplier",
		"/admin/meal", "/admin/migrate", "/admin/migrate/bulk",
	}
	require.Len(t, routes, len(expected))
	for _, url := range expected {
		assert.Contains(t, urls, url)
	}
}

func TestInitRoutes_NoDuplicateUrls(t *testing.T) {
	api, admin := routeTestControllers()
	router := InitRoutes(api, admin, routeTestConfig())

	// Routes mount on a plain ServeMux, which panics on duplicates.
	mux := http.NewServeMux()
	assert.NotPanics(t, func() {
		for _, r := range router.GetRoutes() {
			mux.Handle(r.Url, r.Handler)
		}
	})
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	api, admin := routeTestControllers()
	router := InitRoutes(api, admin, routeTestConfig())

	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}

	// GET on a POST-only route should fail
	req := httptest.NewRequest(http.MethodGet, "/stake", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST on a GET-only route should fail
	req = httptest.NewRequest(http.MethodPost, "/balance", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
