package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string // Postgres (Neon) connection string
	MongoURL    string
	DBType      string
	Port        string
	PDFDir      string // where generated bill PDFs are written
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		PDFDir:      os.Getenv("PDF_DIR"),
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = "./pdfs"
	}
	return cfg
}
