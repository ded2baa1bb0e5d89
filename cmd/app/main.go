package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hasanshibly90/sisl-rmc-scada/cmd"
	httpadapter "github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/in/http"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/clientrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/orderrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/reciperepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/settingsrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/vehiclerepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/jobs"

	_ "github.com/hasanshibly90/sisl-rmc-scada/docs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title SISL RMC SCADA API
// @version 1.0
// @description Order production and batch allocation engine for a ready-mix concrete plant.
// @BasePath /
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	if err := app.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetAllOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
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
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&clientrepo.ClientDTO{},
		&reciperepo.RecipeDTO{},
		&vehiclerepo.VehicleDTO{},
		&settingsrepo.SettingsDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderRowDTO{},
		&orderrepo.CarRunDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpadapter.NewRequestValidator()

	server := httpadapter.NewServer(
		httpadapter.Commands{
			CreateOrder:    app.CreateCreateOrderCommandHandler(),
			StartNextRow:   app.CreateStartNextRowCommandHandler(),
			CompleteRow:    app.CreateCompleteRowCommandHandler(),
			PauseOrder:     app.CreatePauseOrderCommandHandler(),
			ResumeOrder:    app.CreateResumeOrderCommandHandler(),
			StopOrder:      app.CreateStopOrderCommandHandler(),
			CreateRun:      app.CreateCreateRunCommandHandler(),
			CreateClient:   app.CreateCreateClientCommandHandler(),
			UpdateClient:   app.CreateUpdateClientCommandHandler(),
			DeleteClient:   app.CreateDeleteClientCommandHandler(),
			CreateVehicle:  app.CreateCreateVehicleCommandHandler(),
			UpdateVehicle:  app.CreateUpdateVehicleCommandHandler(),
			DeleteVehicle:  app.CreateDeleteVehicleCommandHandler(),
			CreateRecipe:   app.CreateCreateRecipeCommandHandler(),
			UpdateRecipe:   app.CreateUpdateRecipeCommandHandler(),
			DeleteRecipe:   app.CreateDeleteRecipeCommandHandler(),
			UpdateSettings: app.CreateUpdateSettingsCommandHandler(),
		},
		httpadapter.Queries{
			GetAllOrders:    app.CreateGetAllOrdersQueryHandler(),
			GetOrder:        app.CreateGetOrderQueryHandler(),
			GetOrderSummary: app.CreateGetOrderSummaryQueryHandler(),
			GetRunsByOrder:  app.CreateGetRunsByOrderQueryHandler(),
			GetLoadReport:   app.CreateGetLoadReportQueryHandler(),
			GetAllClients:   app.CreateGetAllClientsQueryHandler(),
			GetAllVehicles:  app.CreateGetAllVehiclesQueryHandler(),
			GetAllRecipes:   app.CreateGetAllRecipesQueryHandler(),
			GetSettings:     app.CreateGetSettingsQueryHandler(),
		},
	)

	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
