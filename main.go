package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"backend/config"
	"backend/middleware"
	"backend/reporting"
	"backend/routes"
	"backend/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file, using process environment")
	}
	cfg := config.Load()

	if err := reporting.ValidateRegistry(); err != nil {
		log.Fatal().Err(err).Msg("branch registry")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	client, db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	log.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")

	// The daily summary fires at the business-day rollover.
	location, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Fatal().Err(err).Msg("load timezone")
	}
	s := gocron.NewScheduler(location)
	s.Every(1).Day().At("05:30").Do(utils.DailySummaryJob(cfg, reporting.NewEngine(db)))
	s.StartAsync()

	routes.InitializeRoutes(r, db, cfg)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
