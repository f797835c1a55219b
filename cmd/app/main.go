package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workorders/cmd"
	httpin "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/postgres/activityrepo"
	"workorders/internal/adapters/out/postgres/materialrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/adapters/out/postgres/timetrackingrepo"
	"workorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustGormOpen(configs)
	mustAutoMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close message broker connection", "error", closeErr)
		}
	}()

	jobManager, err := jobs.NewJobManager(app.CreateGetStatusCountsQueryHandler(), configs.StatusReportSchedule, logger)
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:                    goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                    goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                    goDotEnvVariable("DB_USER", "postgres"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                    goDotEnvVariable("DB_NAME", "workorders"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE", "disable"),
		AMQPURL:                   goDotEnvVariable("AMQP_URL", ""),
		AMQPNotificationsExchange: goDotEnvVariable("AMQP_NOTIFICATIONS_EXCHANGE", ""),
		StatusReportSchedule:      goDotEnvVariable("STATUS_REPORT_SCHEDULE", jobs.DefaultStatusReportSchedule),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustAutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusChangeEventDTO{},
		&orderrepo.MaterialLineDTO{},
		&materialrepo.MaterialStockDTO{},
		&timetrackingrepo.TimeSessionDTO{},
		&activityrepo.ActivityEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderStatusCommandHandler(),
		app.CreateGetAllowedNextStatusesQueryHandler(),
		app.CreateGetStatusCountsQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetRecentActivityQueryHandler(),
	)

	e, err := httpin.NewRouter(server, logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", "error", err)
	}
}
