package main

import (
	"log"
	"os"
	"strings"

	"be04/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		autoMigrate(db)
	}
}

// autoMigrate migrates models individually so a failure on one doesn't block others.
func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Printf("migration warning (users): %v", err)
	}
	if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
		log.Printf("migration warning (refresh_tokens): %v", err)
	}
	if err := db.AutoMigrate(&models.Group{}); err != nil {
		log.Printf("migration warning (groups): %v", err)
	}
	if err := db.AutoMigrate(&models.GroupMember{}); err != nil {
		log.Printf("migration warning (group_members): %v", err)
	}
	if err := db.AutoMigrate(&models.Budget{}); err != nil {
		log.Printf("migration warning (budgets): %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}); err != nil {
		log.Printf("migration warning (categories): %v", err)
	}
	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		log.Printf("migration warning (expenses): %v", err)
	}
	if err := db.AutoMigrate(&models.Report{}); err != nil {
		log.Printf("migration warning (reports): %v", err)
	}
}
