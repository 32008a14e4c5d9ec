package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tavern/cmd"
	postgresadapter "tavern/internal/adapters/out/postgres"
	"tavern/internal/adapters/out/rabbitmq"
	"tavern/internal/core/application/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)
	if err := postgresadapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	notifier, closeNotifier := createNotifier(configs, logger)
	defer closeNotifier()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.OrderService().Load(ctx); err != nil {
		log.Fatalf("Error loading unpaid orders: %v", err)
	}

	jobManager := app.CreateJobManager(configs.RefreshSpec)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	refreshSpec := os.Getenv("WORKING_SET_REFRESH_SPEC")
	if refreshSpec == "" {
		refreshSpec = "@every 1m"
	}

	return cmd.Config{
		HTTPPort:    os.Getenv("HTTP_PORT"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   os.Getenv("DB_SSLMODE"),
		AmqpURL:     os.Getenv("AMQP_URL"),
		RefreshSpec: refreshSpec,
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

// createNotifier dials the broker when AMQP_URL is set. Event publishing is
// optional; without a broker the service runs with notifications disabled.
func createNotifier(configs cmd.Config, logger *slog.Logger) (services.Notifier, func()) {
	if configs.AmqpURL == "" {
		logger.Info("amqp url not configured, order events disabled")
		return nil, func() {}
	}

	publisher, err := rabbitmq.Dial(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Error connecting to broker: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("closing broker connection", "error", err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
