package main

import (
	"log"

	"vizagaggregates/config"
	"vizagaggregates/db"
	"vizagaggregates/db/mongo"
	"vizagaggregates/db/postgres"
	"vizagaggregates/repository"
)

// One-time (but safely re-runnable) provisioning: create the schema and
// seed the default client and vehicle lists. Existing rows are left
// untouched, so running this against a live database is harmless.
func main() {
	cfg := config.LoadConfig()

	var referenceRepo repository.ReferenceRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations(cfg.DatabaseURL)

		pg := postgres.NewPostgresDB(cfg.DatabaseURL)
		if err := pg.Connect(); err != nil {
			log.Fatalf("could not connect to postgres: %v", err)
		}
		defer pg.Disconnect()

		referenceRepo = repository.NewPostgresReferenceRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatalf("could not connect to mongo: %v", err)
		}
		defer mg.Disconnect()

		referenceRepo = repository.NewMongoReferenceRepo(mg.Client)

	default:
		log.Fatalf("DB_TYPE not supported: %s", cfg.DBType)
	}

	if err := referenceRepo.SeedReferenceData(db.DefaultClients, db.DefaultVehicles); err != nil {
		log.Fatalf("seeding reference data failed: %v", err)
	}

	log.Println("database setup completed")
}
