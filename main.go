package main

import (
	"log"

	"DTCL-Backend/cmd/config"
	migration "DTCL-Backend/cmd/database/migrate"
	"DTCL-Backend/cmd/database/seed"
	"DTCL-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := seed.Seed(db); err != nil {
		log.Fatalf("failed to seed reference data: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
