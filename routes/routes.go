package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/controllers"
	"backend/middleware"
)

// InitializeRoutes wires the API. Login, the clock probe and the liveness
// check are public; everything else requires the admin session token.
func InitializeRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	auth := controllers.NewAuthController(cfg)
	reports := controllers.NewReportController(db)
	promo := controllers.NewPromoController(db)
	ban := controllers.NewBanController(db)
	users := controllers.NewUserController(db)
	cash := controllers.NewCashController(db)

	router.GET("/healthz", controllers.Health)
	router.POST("/api/login", auth.Login)
	router.GET("/api/time", controllers.ServerTime)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		api.POST("/insights", reports.Insights)
		api.POST("/dashboard-data", reports.DashboardData)
		api.POST("/percentage", reports.Percentage)
		api.POST("/orders", reports.Orders)
		api.POST("/bookings", reports.Bookings)
		api.POST("/expenses", reports.Expenses)

		api.GET("/promo", promo.ListPromoCodes)
		api.POST("/promo", promo.CreatePromoCode)
		api.PUT("/promo", promo.UpdatePromoCode)
		api.DELETE("/promo", promo.DeletePromoCode)

		api.POST("/checkData", ban.CheckData)
		api.POST("/updateBanStatus", ban.UpdateBanStatus)
		api.GET("/getBannedUsers", ban.GetBannedUsers)

		api.GET("/userDataHandler", users.ListUsers)
		api.PUT("/userDataHandler", users.UpdateUser)
		api.DELETE("/userDataHandler", users.DeleteUser)
		api.GET("/usercount", users.UserCount)

		api.GET("/fetchCashBalance", cash.FetchCashBalance)
		api.GET("/fetchCashEntries", cash.FetchCashEntries)
		api.POST("/cashEntries", cash.CreateCashEntry)
		api.DELETE("/cashEntries", cash.DeleteCashEntry)
	}
}
