package storage

import (
	"log"
	"os"

	"github.com/Joeseb100/realprops/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitializeDB opens the Postgres connection and runs migrations. The handle
// is returned to the caller and passed into repositories explicitly; nothing
// in this package holds it as a global.
func InitializeDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Panic("error connecting to db: " + err.Error())
	}

	Migrate(db)
	return db
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.Admin{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Review{},
		&models.AuditLog{},
	)
}
