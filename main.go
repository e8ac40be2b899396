package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"logitrans-backend/database"
	"logitrans-backend/database/seeders"
	"logitrans-backend/logger"
	"logitrans-backend/metrics"
	"logitrans-backend/routes"
	"logitrans-backend/services/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       10 * 1024 * 1024, // 10MB body limit
	})
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	seeders.SeedPoints(db)
	seeders.SeedDirector(db)

	pricingCfg, err := pricing.LoadConfig()
	if err != nil {
		logger.Error("Invalid pricing configuration", err)
		return
	}
	pricingService := pricing.NewService(pricingCfg)

	m := metrics.NewMetrics("logitrans")

	// Metrics are served on their own listener, away from the API surface.
	metricsPort := os.Getenv("METRICS_PORT")
	if metricsPort == "" {
		metricsPort = "9100"
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+metricsPort, mux); err != nil {
			logger.Error("Metrics server stopped", err)
		}
	}()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db, pricingService, m)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success(fmt.Sprintf("Server is running on %s:%s", appHost, appPort))
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Fatal(fmt.Sprintf("Server stopped: %v", err))
	}
}
