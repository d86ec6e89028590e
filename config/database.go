package config

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the database from DATABASE_URL. A postgres DSN is used
// as-is; an empty DSN falls back to a local sqlite file for development.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	case dsn != "":
		// Assume postgres DSN even without scheme prefix
		dialector = postgres.Open(dsn)
	default:
		dsn = "haulpro.db"
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	DB = db
}
