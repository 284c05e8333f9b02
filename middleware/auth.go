// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract user ID from token claims
// 4. Store user ID in context for handlers

package middleware // Declares the package name

import ( // Import required packages
	"go-recipe-api/config"   // Project config (for JWT secret)
	"go-recipe-api/database" // Database connection (for user lookup)
	"go-recipe-api/models"   // User model
	"net/http"               // HTTP status codes (401, etc.)
	"strings"                // String operations (for header parsing)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// AuthMiddleware - Returns a Gin middleware function for JWT authentication
// This middleware validates JWT tokens and extracts user information
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"}) // Return 401 Unauthorized
			return
		}

		// STEP 2: Parse JWT token
		tokenStr := strings.TrimPrefix(header, "Bearer ")                               // Remove 'Bearer ' prefix
		cfg := config.Load()                                                            // Load config for JWT secret
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) { // Parse JWT
			return []byte(cfg.JWTSecret), nil // Provide secret key for validation
		})
		if err != nil || !token.Valid { // If token is invalid or expired
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"}) // Return 401 Unauthorized
			return
		}

		// STEP 3: Extract user ID from token and store in context for later use
		// JWT numbers come back as float64, so convert before storing
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, exists := claims["user_id"]; exists {
				if id, ok := userID.(float64); ok {
					c.Set("user_id", uint(id)) // Store user ID in Gin context
				}
			}
		}

		c.Next() // Continue to next handler (authentication successful)
	}
}

// CurrentUser - Loads the authenticated user record for the current request
// Returns false (and aborts with 401) when the token carried no valid user
func CurrentUser(c *gin.Context) (*models.User, bool) {
	idValue, exists := c.Get("user_id")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in token"})
		return nil, false
	}

	id, ok := idValue.(uint)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID format"})
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}

	return &user, true
}
