package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rugops/cmd"
	httpadapter "rugops/internal/adapters/in/http"
	"rugops/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	root := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := root.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
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
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateOrder:            root.CreateCreateOrderCommandHandler(),
			UpdateOrderContact:     root.CreateUpdateOrderContactCommandHandler(),
			UpdateItemDetails:      root.CreateUpdateItemDetailsCommandHandler(),
			SetRepairEstimate:      root.CreateSetRepairEstimateCommandHandler(),
			FlagItemRepair:         root.CreateFlagItemRepairCommandHandler(),
			MarkItemReady:          root.CreateMarkItemReadyCommandHandler(),
			MarkItemDelivered:      root.CreateMarkItemDeliveredCommandHandler(),
			SetApprovalRequirement: root.CreateSetApprovalRequirementCommandHandler(),
			DecideApproval:         root.CreateDecideApprovalCommandHandler(),
			PurgeOrders:            root.CreatePurgeOrdersCommandHandler(),
			MigrateOrders:          root.CreateMigrateOrdersCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetAllOrders:       root.CreateGetAllOrdersQueryHandler(),
			GetOrder:           root.CreateGetOrderQueryHandler(),
			GetDeliveryReady:   root.CreateGetDeliveryReadyOrdersQueryHandler(),
			GetNextOrderID:     root.CreateGetNextOrderIDQueryHandler(),
			GetPendingApproval: root.CreateGetPendingApprovalOrdersQueryHandler(),
			PlanRoute:          root.CreatePlanRouteQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
