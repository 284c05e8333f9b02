// helpers_test.go - Shared fixtures for the handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"                  // For building request bodies
	"encoding/json"          // For encoding/decoding JSON
	"go-recipe-api/config"   // Project config
	"go-recipe-api/database" // Database connection
	"go-recipe-api/middleware"
	"go-recipe-api/models" // Entity models
	"net/http"             // HTTP requests
	"net/http/httptest"    // HTTP test helpers
	"os"                   // For file operations
	"testing"              // For fixture failures
	"time"                 // For token expiration

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/golang-jwt/jwt/v5"  // JWT library
	"github.com/shopspring/decimal" // Fixed-point price values
)

// setupTestDB removes any existing test DB and creates a new one for each test run
func setupTestDB(t *testing.T, name string) {
	_ = os.Remove(name) // Remove old test DB if exists
	if err := database.Connect(name); err != nil { // Connect and migrate
		t.Fatalf("connecting test DB: %v", err)
	}
}

// setupRouter returns a Gin engine with all API routes for testing
func setupRouter() *gin.Engine {
	r := gin.Default()              // New Gin router
	r.HandleMethodNotAllowed = true // Match production 405 behavior

	r.POST("/user/create/", CreateUser)
	r.POST("/user/token/", Token)

	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me/", Me)
		user.PATCH("/me/", UpdateMe)
	}

	recipe := r.Group("/recipe")
	recipe.Use(middleware.AuthMiddleware())
	{
		recipe.GET("/recipes/", ListRecipes)
		recipe.POST("/recipes/", CreateRecipe)
		recipe.GET("/recipes/:id/", GetRecipe)
		recipe.PUT("/recipes/:id/", UpdateRecipe)
		recipe.PATCH("/recipes/:id/", PatchRecipe)
		recipe.DELETE("/recipes/:id/", DeleteRecipe)
		recipe.POST("/recipes/:id/upload-image/", UploadRecipeImage)

		recipe.GET("/tags/", ListTags)
		recipe.POST("/tags/", CreateTag)
		recipe.GET("/tags/:id/", GetTag)
		recipe.PUT("/tags/:id/", UpdateTag)
		recipe.PATCH("/tags/:id/", UpdateTag)
		recipe.DELETE("/tags/:id/", DeleteTag)

		recipe.GET("/ingredients/", ListIngredients)
		recipe.POST("/ingredients/", CreateIngredient)
		recipe.GET("/ingredients/:id/", GetIngredient)
		recipe.PUT("/ingredients/:id/", UpdateIngredient)
		recipe.PATCH("/ingredients/:id/", UpdateIngredient)
		recipe.DELETE("/ingredients/:id/", DeleteIngredient)
	}

	return r
}

// createTestUser creates a user and returns it together with a signed token
func createTestUser(email, password string) (*models.User, string) {
	user, err := database.CreateUser(email, password, "Test User")
	if err != nil {
		panic(err)
	}

	cfg := config.Load() // Load config for JWT secret
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		panic(err)
	}

	return user, tokenString
}

// performJSON serves a JSON request against the router and records the response
func performJSON(router *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload) // Encode input as JSON
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()                     // Record HTTP response
	req, _ := http.NewRequest(method, url, body)    // Build request
	req.Header.Set("Content-Type", "application/json") // Set header
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req) // Serve request
	return w
}

// decodeBody decodes a recorded JSON response into a generic map
func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	data := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &data)
	return data
}

// decodeList decodes a recorded JSON array response
func decodeList(w *httptest.ResponseRecorder) []map[string]interface{} {
	data := []map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &data)
	return data
}

// createTestRecipe inserts a recipe with sane defaults directly into the DB
func createTestRecipe(userID uint, title string) *models.Recipe {
	recipe := models.Recipe{
		Title:       title,
		TimeMinutes: 5,
		Price:       decimalFromString("5.05"),
		Description: "Test recipe description.",
		Link:        "http://example.com/recipe.pdf",
		UserID:      userID,
	}
	database.DB.Create(&recipe)
	return &recipe
}

// decimalFromString parses a decimal literal, panicking on bad test input
func decimalFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
