package main

import (
	"log"

	"laborlens/adapters/datafile"
	"laborlens/adapters/postgres"
	"laborlens/internal/config"
	"laborlens/internal/loader"
	"laborlens/internal/testkit"
	"laborlens/ports"
	"laborlens/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure data source
	var source ports.ObservationSourcePort
	switch appConfig.Data.Source {
	case config.SourcePostgres:
		db, err := postgres.Connect(appConfig.Database)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		log.Printf("Using Postgres data source")
		source = postgres.NewObservationSource(db)
	case config.SourceDemo:
		log.Printf("Using synthetic demo data")
		source = testkit.NewSyntheticSource(testkit.DefaultGeneratorConfig())
	default:
		log.Printf("Using file data source: %s", appConfig.Data.File)
		source = datafile.NewFileSource(appConfig.Data.File)
	}

	// Initialize web server
	app, err := ui.NewApp(ui.Config{
		Port:             appConfig.Server.Port,
		DefaultYearFloor: appConfig.UI.DefaultYearFloor,
	}, loader.New(source))
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start the server
	log.Fatal(app.Start())
}
