package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"orderdelivery/cmd"
	_ "orderdelivery/docs"
	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/adapters/out/postgres/proofrepo"
	"orderdelivery/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Order Delivery Service API
// @version 1.0
// @description Order management and delivery tracking for the e-commerce platform.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:                envVariable("HTTP_PORT"),
		DBHost:                  envVariable("DB_HOST"),
		DBPort:                  envVariable("DB_PORT"),
		DBUser:                  envVariable("DB_USER"),
		DBPassword:              envVariable("DB_PASSWORD"),
		DBName:                  envVariable("DB_NAME"),
		DBSslMode:               envVariable("DB_SSLMODE"),
		ProofUploadDir:          envVariable("PROOF_UPLOAD_DIR"),
		JWTSecret:               envVariable("JWT_SECRET"),
		AllowBodyDelivererID:    envBool("AUTH_ALLOW_BODY_DELIVERER_ID"),
		StrictOwnership:         envBool("AUTH_STRICT_OWNERSHIP"),
		ProofCleanupSchedule:    os.Getenv("PROOF_CLEANUP_SCHEDULE"),
		ProofCleanupGracePeriod: envDuration("PROOF_CLEANUP_GRACE_PERIOD", time.Hour),
		StaleOrderSchedule:      os.Getenv("STALE_ORDER_SCHEDULE"),
		StaleOrderMaxAge:        envDuration("STALE_ORDER_MAX_AGE", 0),
	}
}

func envVariable(key string) string {
	return os.Getenv(key)
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&proofrepo.ProofDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads/delivery-proofs", configs.ProofUploadDir)

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
