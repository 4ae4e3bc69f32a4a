package main

import (
	"fmt"
	nethttp "net/http"
	"os"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/planrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/metrics"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(
		root.CreateMarkOverdueShipmentsCommandHandler(),
		configs.OverdueGracePeriod,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, registry, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		OverdueGracePeriod: overdueGracePeriod(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// overdueGracePeriod reads OVERDUE_GRACE_PERIOD (Go duration syntax).
// Defaults to 48h when unset.
func overdueGracePeriod() time.Duration {
	raw := goDotEnvVariable("OVERDUE_GRACE_PERIOD")
	if raw == "" {
		return 48 * time.Hour
	}

	grace, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid OVERDUE_GRACE_PERIOD %q: %v", raw, err)
	}
	return grace
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&planrepo.PlanDTO{}, &shipmentrepo.ShipmentDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, registry *prometheus.Registry, port string) {
	e := echo.New()

	server := http.NewServer(
		root.CreateOptimizeFulfillmentCommandHandler(),
		root.CreateCreateShipmentCommandHandler(),
		root.CreateUpdateShipmentStatusCommandHandler(),
		root.CreateGetPlanQueryHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateGetUndeliveredShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
