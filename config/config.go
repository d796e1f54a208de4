package config

import (
	"log"
	"os"

	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// TaxRate applied to the subtotal when an order is completed (5%)
var TaxRate = decimal.RequireFromString("0.05")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("POS_DB", "restaurant_pos.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// AutoMigrate creates or updates the schema for all POS entities.
// Split out so tests can migrate an in-memory database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}
