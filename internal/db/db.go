package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Master{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.MakeRequest{},
		&models.BotSettings{},
		&models.BotLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedAdmins(db, cfg)

	return db
}

// seedAdmins upserts the bootstrap admin accounts from ADMIN_TELEGRAM_IDS.
func seedAdmins(db *gorm.DB, cfg *config.Config) {
	for _, id := range cfg.AdminIDs() {
		var admin models.Admin
		err := db.Where("telegram_id = ?", id).First(&admin).Error
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&models.Admin{TelegramID: id}).Error; err != nil {
				log.Printf("failed to seed admin %d: %v", id, err)
			}
		default:
			log.Printf("failed to look up admin %d: %v", id, err)
		}
	}
}
