package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/controllers"
	"github.com/pest-report/api-go/middleware"
)

func SetupAdminRoutes(r *gin.Engine, adminController *controllers.AdminController, cfg *config.Config) {
	admin := r.Group("/api/admin")

	// Login is the only public admin route.
	admin.POST("/login", adminController.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/reports", adminController.GetAllReports)
		protected.PUT("/reports/:reportId/status", adminController.UpdateReportStatus)
		protected.GET("/users/rankings", adminController.GetUserRankings)
		protected.GET("/user/:userId", adminController.GetUserByID)
		protected.GET("/logs", adminController.GetActivityLogs)
	}
}
