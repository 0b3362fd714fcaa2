package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/controllers"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authController := controllers.NewAuthController(db, cfg)
	userController := controllers.NewUserController(db, cfg)
	reportController := controllers.NewReportController(db, cfg, controllers.NewPhotoStorage(cfg))
	adminController := controllers.NewAdminController(db, cfg)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	SetupUserRoutes(r, userController, cfg)
	SetupReportRoutes(r, reportController, cfg)
	SetupAdminRoutes(r, adminController, cfg)
}
