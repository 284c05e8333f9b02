// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-recipe-api/config" // Project config
	"go-recipe-api/models" // Entity models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error                                            // Declare error variable
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                          // If error, return it
		return err
	}

	// Auto-migrate all models (create tables and join tables if needed)
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	); err != nil {
		return err
	}

	// Seed a default superuser if configured
	return createDefaultSuperuser()
}

// createDefaultSuperuser - Creates a default superuser if configured and none exists
// This uses environment variables for credentials instead of hardcoded values
func createDefaultSuperuser() error {
	cfg := config.Load() // Load configuration

	// Only seed when explicitly configured
	if !cfg.CreateSuperuser {
		return nil
	}

	// Check if any superuser exists
	var count int64
	DB.Model(&models.User{}).Where("is_superuser = ?", true).Count(&count)

	if count == 0 {
		if _, err := CreateSuperuser(cfg.SuperuserEmail, cfg.SuperuserPassword); err != nil {
			return err
		}
	}

	return nil
}
