package main

import (
	"fmt"
	"net/http"
	"os"

	"greenfleet/cmd"
	"greenfleet/internal/adapters/out/notify"
	"greenfleet/internal/adapters/out/postgres/assignmentrepo"
	"greenfleet/internal/adapters/out/postgres/depotrepo"
	"greenfleet/internal/adapters/out/postgres/driverrepo"
	"greenfleet/internal/adapters/out/postgres/orderrepo"
	"greenfleet/internal/adapters/out/postgres/sessionrepo"
	"greenfleet/internal/adapters/out/postgres/vehiclerepo"
	"greenfleet/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		BaseFare:            goDotEnvVariable("BASE_FARE"),
		PerKmRate:           goDotEnvVariable("PER_KM_RATE"),
		BroadcastRadiusKm:   goDotEnvVariable("BROADCAST_RADIUS_KM"),
		BroadcastStaleAfter: goDotEnvVariable("BROADCAST_STALE_AFTER"),
		DailyDeliveryTarget: goDotEnvVariable("DAILY_DELIVERY_TARGET"),
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
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TrackingDTO{},
		&assignmentrepo.AssignmentDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&depotrepo.DepotDTO{},
		&depotrepo.PortDTO{},
		&sessionrepo.SessionDTO{},
		&notify.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, app.CreateServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
