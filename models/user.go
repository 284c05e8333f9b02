// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a user account in the database
	ID          uint   `json:"id" gorm:"primaryKey"`         // Unique user ID (primary key)
	Email       string `json:"email" gorm:"unique;not null"` // User's email (must be unique, cannot be null)
	Name        string `json:"name"`                         // Display name
	Password    string `json:"-" gorm:"not null"`            // Bcrypt hash, never serialized
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsStaff     bool   `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool   `json:"is_superuser" gorm:"default:false"`
}
