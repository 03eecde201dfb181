package main

import (
	"Melt-App/cmd/config"
	migration "Melt-App/cmd/database/migrate"
	"Melt-App/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	// A database failure is not fatal: the AI routes stay up and the
	// persistence-backed routes answer 503 until the next restart.
	db, err := config.ConnectDB()
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		db = nil
	} else {
		if err := migration.Migrate(db); err != nil {
			log.Printf("Database migration failed: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Failed to set up app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
