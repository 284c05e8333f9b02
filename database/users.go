// users.go - Manager-style helpers for creating and removing user accounts

package database // Declares the package name

import (
	"errors"  // Validation errors
	"strings" // Email normalization

	"go-recipe-api/models" // User model

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// ErrEmailRequired is returned when a user is created without an email address.
var ErrEmailRequired = errors.New("users must have an email address")

// NormalizeEmail lowercases the domain part of an email address.
// The local part is kept as provided (Test2@Example.com -> Test2@example.com).
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateUser creates a regular user with a hashed password.
// An empty email is a validation error.
func CreateUser(email, password, name string) (*models.User, error) {
	return createUser(email, password, name, false)
}

// CreateSuperuser creates a user with the staff and superuser flags set.
func CreateSuperuser(email, password string) (*models.User, error) {
	return createUser(email, password, "", true)
}

func createUser(email, password, name string, super bool) (*models.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       NormalizeEmail(email),
		Name:        name,
		Password:    string(hash),
		IsActive:    true,
		IsStaff:     super,
		IsSuperuser: super,
	}
	if err := DB.Create(&user).Error; err != nil { // Save user to DB
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by id and reports whether a row was deleted.
func DeleteUser(id uint) (bool, error) {
	res := DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
