package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotelbooking/models"
)

var DB *gorm.DB

func (p Postgres) DSN(timezone string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		p.Host, p.User, p.Password, p.Name, p.Port, p.SSLMode, timezone)
}

func ConnectDB(cfg *Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.Postgres.DSN(cfg.Booking.Timezone)), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("fail to connect to db: %w", err)
	}

	if err := DB.AutoMigrate(&models.Customer{}, &models.Booking{}, &models.Staff{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	log.Println("Successfully connected to db")
	return nil
}
