package internal

import (
	"net/http"

	"fitledger/internal/controllers"
	"fitledger/internal/providers"
	"fitledger/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, adminController *controllers.AdminController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/stake", http.HandlerFunc(apiController.Stake))
	routers.Post("/unstake", http.HandlerFunc(apiController.Unstake))
	routers.Post("/restake", http.HandlerFunc(apiController.Restake))
	routers.Post("/stake/claim", http.HandlerFunc(apiController.ClaimStakingRewards))
	routers.Post("/stake/claim-all", http.HandlerFunc(apiController.ClaimAllStakingRewards))
	routers.Get("/stake/info", http.HandlerFunc(apiController.GetStake))
	routers.Get("/stakes", http.HandlerFunc(apiController.GetStakes))
	routers.Get("/stakes/count", http.HandlerFunc(apiController.GetStakeCount))

	routers.Post("/activity", http.HandlerFunc(apiController.RecordActivity))
	routers.Get("/activity/today", http.HandlerFunc(apiController.GetTodayActivity))
	routers.Get("/activity/preview", http.HandlerFunc(apiController.PreviewActivityRewards))

	routers.Post("/referral/register", http.HandlerFunc(apiController.RegisterReferral))
	routers.Get("/referral", http.HandlerFunc(apiController.GetReferralInfo))
	routers.Get("/referrals", http.HandlerFunc(apiController.GetReferrals))

	routers.Post("/premium/set", http.HandlerFunc(apiController.SetPremiumStatus))
	routers.Get("/premium", http.HandlerFunc(apiController.GetPremiumStatus))

	routers.Get("/balance", http.HandlerFunc(apiController.GetBalance))

	routers.Post("/admin/pause", http.HandlerFunc(adminController.EmergencyPause))
	routers.Post("/admin/unpause", http.HandlerFunc(adminController.EmergencyUnpause))
	routers.Post("/admin/multiplier", http.HandlerFunc(adminController.SetLockPeriodMultiplier))
	routers.Post("/admin/meal", http.HandlerFunc(adminController.ClaimMealRewards))
	routers.Post("/admin/migrate", http.HandlerFunc(adminController.MigrateUserData))
	routers.Post("/admin/migrate/bulk", http.HandlerFunc(adminController.BulkMigrateUserData))

	return routers
}
