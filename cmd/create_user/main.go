package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"be04/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Println("usage: go run ./cmd/create_user <username> <email> <phone> <password> [firstName]")
		os.Exit(2)
	}
	username := os.Args[1]
	email := os.Args[2]
	phone := os.Args[3]
	password := os.Args[4]
	firstName := username
	if len(os.Args) > 5 {
		firstName = os.Args[5]
	}

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var existing models.User
	if err := db.Where("username = ? OR email = ? OR phone = ?", username, email, phone).First(&existing).Error; err == nil {
		log.Fatalf("user %s already exists", username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username:       username,
		FirstName:      firstName,
		Email:          email,
		Phone:          phone,
		HashedPassword: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Println("created user", user.ID)
}
