package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"bistro/cmd"
	_ "bistro/docs"
	httpadapter "bistro/internal/adapters/in/http"
	"bistro/internal/config"
	"bistro/internal/generated/servers"
	"bistro/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Bistro Kitchen API
// @version 1.0
// @description Kitchen order fulfillment service managing stations, recipes, ingredient stock, a backup pool, and a FIFO order queue.
func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, logger)

	if err := seedKitchen(&app, configs.KitchenFile); err != nil {
		log.Fatalf("Error seeding kitchen: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateProcessOrdersCommandHandler(),
		configs.FulfillmentSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		KitchenFile:         goDotEnvVariable("KITCHEN_FILE"),
		FulfillmentSchedule: goDotEnvVariable("FULFILLMENT_SCHEDULE"),
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

// seedKitchen loads the seed file and replays it through the command
// handlers. An empty path skips seeding and the kitchen starts bare.
func seedKitchen(app *cmd.CompositionRoot, path string) error {
	if path == "" {
		return nil
	}

	kitchen, err := config.Load(path)
	if err != nil {
		return err
	}

	return app.SeedKitchen(context.Background(), kitchen)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateRegisterStationCommandHandler(),
		app.CreateRemoveStationCommandHandler(),
		app.CreatePromoteStationCommandHandler(),
		app.CreateAssignRecipeCommandHandler(),
		app.CreateRestockStationCommandHandler(),
		app.CreateMergeStationsCommandHandler(),
		app.CreateRestockBackupCommandHandler(),
		app.CreateReplaceBackupCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreatePrepareNextOrderCommandHandler(),
		app.CreateProcessOrdersCommandHandler(),
		app.CreateGetStationsQueryHandler(),
		app.CreateGetStationQueryHandler(),
		app.CreateGetBackupStockQueryHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
