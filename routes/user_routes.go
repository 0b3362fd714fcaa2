package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/controllers"
	"github.com/pest-report/api-go/middleware"
)

func SetupUserRoutes(r *gin.Engine, userController *controllers.UserController, cfg *config.Config) {
	user := r.Group("/api/user")
	user.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		user.GET("/profile", userController.GetProfile)
		user.PUT("/profile", userController.UpdateProfile)
	}
}
