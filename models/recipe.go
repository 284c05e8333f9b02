// recipe.go - Defines the Recipe, Tag and Ingredient models

package models // Declares the package name

import (
	"path/filepath" // For extracting the file extension

	"github.com/google/uuid"        // Random image file names
	"github.com/shopspring/decimal" // Fixed-point price column
)

type Recipe struct { // Recipe struct represents a recipe owned by a user
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(5,2)"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Image       string          `json:"image"` // Relative path of the stored image, empty when unset
	UserID      uint            `json:"-" gorm:"not null"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
	Tags        []Tag           `json:"tags" gorm:"many2many:recipe_tags;"`
	Ingredients []Ingredient    `json:"ingredients" gorm:"many2many:recipe_ingredients;"`
}

type Tag struct { // Tag struct represents a user-scoped label for recipes
	ID      uint     `json:"id" gorm:"primaryKey"`
	Name    string   `json:"name" gorm:"not null"`
	UserID  uint     `json:"-" gorm:"not null;index"`
	Recipes []Recipe `json:"-" gorm:"many2many:recipe_tags;"`
}

type Ingredient struct { // Ingredient struct represents a user-scoped ingredient record
	ID      uint     `json:"id" gorm:"primaryKey"`
	Name    string   `json:"name" gorm:"not null"`
	UserID  uint     `json:"-" gorm:"not null;index"`
	Recipes []Recipe `json:"-" gorm:"many2many:recipe_ingredients;"`
}

// RecipeImageFilePath returns the storage path for an uploaded recipe image:
// uploads/recipe/{random-uuid}{original extension}
func RecipeImageFilePath(filename string) string {
	ext := filepath.Ext(filename)
	return filepath.Join("uploads", "recipe", uuid.NewString()+ext)
}
