package main

import (
	"fmt"
	"log/slog"
	"os"

	"workorder/cmd"
	_ "workorder/docs"
	httpin "workorder/internal/adapters/in/http"
	"workorder/internal/adapters/out/postgres/entryrepo"
	"workorder/internal/adapters/out/postgres/workorderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title        Work Order API
// @version      1.0
// @description  Rail vehicle maintenance work orders with time and material line items.

// @host     localhost:8080
// @BasePath /

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := app.CreateJobManager(configs.PricelistRefreshSchedule)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		PriceCatalogBaseURL:      goDotEnvVariable("PRICE_CATALOG_BASE_URL"),
		PriceCatalogTimeout:      goDotEnvVariable("PRICE_CATALOG_TIMEOUT"),
		PricelistRefreshSchedule: goDotEnvVariable("PRICELIST_REFRESH_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&entryrepo.TimeEntryDTO{},
		&entryrepo.MaterialEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateWorkOrderCommandHandler(),
		app.CreateUpdateWorkOrderCommandHandler(),
		app.CreateChangeWorkOrderStatusCommandHandler(),
		app.CreateArchiveWorkOrderCommandHandler(),
		app.CreateSaveTimeEntriesCommandHandler(),
		app.CreateSaveMaterialEntriesCommandHandler(),
		app.CreateGetAllWorkOrdersQueryHandler(),
		app.CreateGetWorkOrderQueryHandler(),
		app.CreateGetWorkshopOrdersQueryHandler(),
		app.CreateGetTimeEntriesQueryHandler(),
		app.CreateGetMaterialEntriesQueryHandler(),
		app.PriceCatalog(),
		app.PriceCatalog(),
	)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
