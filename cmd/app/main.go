package main

import (
	"fmt"

	"concierge/cmd"
	httpin "concierge/internal/adapters/in/http"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()

	if err := httpin.ValidateOpenAPISpec(); err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, config)
}

func getConfig() cmd.Config {
	// A missing .env file is fine in deployed environments, where settings
	// come from the process environment.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, []byte(config.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
