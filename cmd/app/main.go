package main

import (
	"fmt"
	"log/slog"
	"os"

	"steelflow/cmd"
	httpin "steelflow/internal/adapters/in/http"
	"steelflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	gormDB, err := gorm.Open(postgres.Open(dsn(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateTrackExecutionCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		LogLevel:   goDotEnvVariable("LOG_LEVEL"),
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

func dsn(config cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
}

func newLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateWorkOrderCommandHandler(),
		app.CreateScheduleWorkOrderCommandHandler(),
		app.CreateStartWorkOrderCommandHandler(),
		app.CreatePauseWorkOrderCommandHandler(),
		app.CreateResumeWorkOrderCommandHandler(),
		app.CreateCompleteWorkOrderCommandHandler(),
		app.CreateCancelWorkOrderCommandHandler(),
		app.CreateAdjustLineItemCommandHandler(),
		app.CreateReallocateWorkOrderCommandHandler(),
		app.CreateRecordProductionCommandHandler(),
		app.CreateGetWorkOrderProgressQueryHandler(),
		app.CreateGetActiveWorkOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
