package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripsmith/internal/models/db_models"
)

// InitPostgresql opens the catalog database when POSTGRES_URL is set.
// An empty URL returns nil and the app falls back to the built-in
// in-memory catalog.
func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Println("POSTGRES_URL not set, running with the in-memory catalog")
		return nil
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(&db_models.Activity{}, &db_models.WeightAdjustment{}); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
