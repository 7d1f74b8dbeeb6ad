package config

import (
	"log"

	"checkitoff/global"
	"checkitoff/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	db, err := gorm.Open(mysql.Open(AppConfig.Database.Dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)

	if err := db.AutoMigrate(&models.News{}, &models.Vote{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	global.Db = db
}
