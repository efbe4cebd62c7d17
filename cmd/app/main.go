package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"coldstore/cmd"
	httpadapter "coldstore/internal/adapters/in/http"
	"coldstore/internal/adapters/out/pglisten"
	"coldstore/internal/adapters/out/postgres/seqrepo"
	"coldstore/internal/adapters/out/postgres/staterepo"
	"coldstore/internal/core/ports"
	"coldstore/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := gormDB.AutoMigrate(&staterepo.StateRow{}, &seqrepo.SequenceRow{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	feed := openChangeFeed(configs, logger)
	jobManager := jobs.NewJobManager(
		root.CreateRecomputeAlertsCommandHandler(),
		configs.AlertSweepSpec,
		feed,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs, logger)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in production; variables then come from
	// the real environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		OpenAPIPath:       envOrDefault("OPENAPI_PATH", "api/openapi.yml"),
		SupervisorEnabled: cmd.ParseBool(envOrDefault("SUPERVISOR_ENABLED", "true")),
		AllowCancel:       cmd.ParseBool(os.Getenv("ALLOW_CANCEL")),
		OrderTTL:          cmd.ParseDuration(os.Getenv("ORDER_TTL")),
		AlertSweepSpec:    os.Getenv("ALERT_SWEEP_SPEC"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// openChangeFeed connects the LISTEN/NOTIFY consumer. The feed is an
// optimization over the periodic sweep, so a failure to connect degrades
// to sweep-only operation instead of aborting startup.
func openChangeFeed(configs cmd.Config, logger *slog.Logger) ports.ChangeFeed {
	feed, err := pglisten.NewListener(configs.DSN(), staterepo.NotifyChannel, logger)
	if err != nil {
		logger.Warn("change feed unavailable, relying on the sweep alone", "error", err)
		return nil
	}
	return feed
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	getZonesHandler, err := root.CreateGetZonesQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build zones query: %v", err)
	}
	getPendingOrdersHandler, err := root.CreateGetPendingOrdersQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build orders query: %v", err)
	}
	getAlertsHandler, err := root.CreateGetAlertsQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build alerts query: %v", err)
	}
	getStatsHandler, err := root.CreateGetStatsQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build stats query: %v", err)
	}
	findBoxHandler, err := root.CreateFindBoxQueryHandler()
	if err != nil {
		log.Fatalf("Failed to build search query: %v", err)
	}

	server := httpadapter.NewServer(
		root.UserDirectory(),
		root.CreateRegisterInboundBoxCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateExecuteOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateDispatchBoxCommandHandler(),
		root.CreateReportFailureCommandHandler(),
		root.CreateAnnotateAlertCommandHandler(),
		root.CreateResolveAlertCommandHandler(),
		root.CreateFixTemperatureCommandHandler(),
		root.CreateRenameWarehouseCommandHandler(),
		root.CreateRecomputeAlertsCommandHandler(),
		getZonesHandler,
		getPendingOrdersHandler,
		getAlertsHandler,
		getStatsHandler,
		findBoxHandler,
		logger,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	validator, err := httpadapter.NewOpenAPIValidator(configs.OpenAPIPath)
	if err != nil {
		log.Fatalf("Failed to load API contract: %v", err)
	}
	e.Use(validator)

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
