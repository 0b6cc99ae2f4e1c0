package main

import (
	"fmt"
	"net/http"

	"vizagaggregates/config"
	"vizagaggregates/db"
	"vizagaggregates/db/mongo"
	"vizagaggregates/db/postgres"
	"vizagaggregates/handlers"
	"vizagaggregates/repository"
	"vizagaggregates/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var recordRepo repository.RecordRepository
	var referenceRepo repository.ReferenceRepository
	var reportRepo repository.ReportRepository

	switch cfg.DBType {
	case "postgres":
		// Schema must exist before any query layer runs
		db.RunMigrations(cfg.DatabaseURL)

		pg := postgres.NewPostgresDB(cfg.DatabaseURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		recordRepo = repository.NewPostgresRecordRepo(pg.Conn)
		referenceRepo = repository.NewPostgresReferenceRepo(pg.Conn)
		reportRepo = repository.NewPostgresReportRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		recordRepo = repository.NewMongoRecordRepo(mg.Client)
		referenceRepo = repository.NewMongoReferenceRepo(mg.Client)
		reportRepo = repository.NewMongoReportRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	recordHandler := &handlers.RecordHandler{Repo: recordRepo}
	referenceHandler := &handlers.ReferenceHandler{Repo: referenceRepo}
	reportHandler := &handlers.ReportHandler{Repo: reportRepo}
	pdfHandler := &handlers.PDFHandler{Repo: reportRepo, SavePath: cfg.PDFDir}

	routes.SetupRoutes(recordHandler, referenceHandler, reportHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
