package main

import (
	"fmt"
	"strings"

	"be04/models"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a user after checking the username, email and phone
// are all unused. Password policy stays minimal; credential handling is not
// part of the ledger core.
func RegisterUser(username, firstName, lastName, email, phone, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if len(password) < 6 { // basic password policy
		return nil, fmt.Errorf("password too short (min 6)")
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("username = ? OR email = ? OR phone = ?", username, email, phone).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("user with same username, email or phone already exists")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:       username,
		FirstName:      strings.TrimSpace(firstName),
		LastName:       strings.TrimSpace(lastName),
		Email:          email,
		Phone:          phone,
		HashedPassword: hashedPassword,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return nil, fmt.Errorf("user with same username, email or phone already exists")
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate looks a user up by username or phone and verifies the password.
func Authenticate(usernameOrPhone, password string) (models.User, error) {
	usernameOrPhone = strings.TrimSpace(usernameOrPhone)
	var user models.User
	if err := db.Where("username = ? OR phone = ?", usernameOrPhone, usernameOrPhone).First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
