package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/controllers"
	"github.com/pest-report/api-go/middleware"
)

func SetupReportRoutes(r *gin.Engine, reportController *controllers.ReportController, cfg *config.Config) {
	reports := r.Group("/api/reports")
	reports.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		reports.POST("", reportController.CreateReport)
		reports.GET("/my-reports", reportController.GetMyReports)
	}
}
