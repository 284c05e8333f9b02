// user.go - Handles user registration, token issuance and the profile endpoint

package handlers // Declares the package name

import ( // Import required packages
	"go-recipe-api/config"     // Project config
	"go-recipe-api/database"   // Database connection and user manager
	"go-recipe-api/middleware" // For resolving the authenticated user
	"go-recipe-api/models"     // User model
	"net/http"                 // HTTP status codes
	"time"                     // For token expiration

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

type CreateUserInput struct { // Struct for registration input
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"` // At least 5 characters
	Name     string `json:"name"`
}

type TokenInput struct { // Struct for token requests
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeInput struct { // Struct for profile updates, all fields optional
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// CreateUser handles POST /user/create/
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}

	user, err := database.CreateUser(input.Email, input.Password, input.Name)
	if err != nil { // Duplicate email or empty email
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The serialized user never includes the password hash
	c.JSON(http.StatusCreated, user)
}

// Token handles POST /user/token/
// Bad credentials and blank passwords answer 400, and never include a token.
func Token(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", database.NormalizeEmail(input.Email)).First(&user).Error; err != nil { // Find user by email
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to authenticate with provided credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to authenticate with provided credentials"})
		return
	}
	if !user.IsActive { // Deactivated accounts cannot authenticate
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to authenticate with provided credentials"})
		return
	}

	// JWT generation
	cfg := config.Load()                                              // Load config for JWT secret
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ // Create JWT token
		"user_id": user.ID,                               // Add user ID to token
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Set expiration (72 hours)
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret)) // Sign token
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString}) // Return token
}

// Me handles GET /user/me/
func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": user.Email, "name": user.Name})
}

// UpdateMe handles PATCH /user/me/
// Supports changing the display name and the password (re-hashed on write).
func UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var input UpdateMeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		user.Password = string(hash)
	}

	if err := database.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email, "name": user.Name})
}
