package main

import (
	"flag"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/logger"
	"github.com/pest-report/api-go/middleware"
	"github.com/pest-report/api-go/routes"
	"github.com/pest-report/api-go/seeders"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	seedAdmin := flag.Bool("seed-admin", false, "create the admin account from ADMIN_EMAIL/ADMIN_PASSWORD and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer logger.L().Sync()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if *seedAdmin {
		if err := seeders.SeedAdmin(db, cfg); err != nil {
			logger.L().Fatal("admin seed failed", zap.Error(err))
		}
		return
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.NewHTTPMetrics().Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded report photos are served straight off disk.
	r.Static("/uploads", cfg.UploadDir)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(r, db, cfg)

	logger.L().Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}
