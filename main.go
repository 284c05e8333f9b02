// main.go - Entry point for the recipe API server

package main // Declares the package name

import ( // Import required packages
	"go-recipe-api/config"     // Project config management
	"go-recipe-api/database"   // Database connection and setup
	"go-recipe-api/handlers"   // HTTP handlers for API endpoints
	"go-recipe-api/middleware" // Middleware (e.g., authentication)
	"log"                      // Logging

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (port, DB path, JWT secret)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()             // Create a new Gin router (web server)
	r.HandleMethodNotAllowed = true // Unsupported methods answer 405, not 404

	// Serve uploaded recipe images statically
	r.Static("/uploads", "./uploads")

	// Public routes (no authentication required)
	r.POST("/user/create/", handlers.CreateUser) // Public route: account creation
	r.POST("/user/token/", handlers.Token)       // Public route: obtain auth token

	// Profile routes (require a valid token)
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me/", handlers.Me)
		user.PATCH("/me/", handlers.UpdateMe)
	}

	// Recipe, tag and ingredient routes (require a valid token)
	recipe := r.Group("/recipe")
	recipe.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		recipe.GET("/recipes/", handlers.ListRecipes)
		recipe.POST("/recipes/", handlers.CreateRecipe)
		recipe.GET("/recipes/:id/", handlers.GetRecipe)
		recipe.PUT("/recipes/:id/", handlers.UpdateRecipe)
		recipe.PATCH("/recipes/:id/", handlers.PatchRecipe)
		recipe.DELETE("/recipes/:id/", handlers.DeleteRecipe)
		recipe.POST("/recipes/:id/upload-image/", handlers.UploadRecipeImage)

		recipe.GET("/tags/", handlers.ListTags)
		recipe.POST("/tags/", handlers.CreateTag)
		recipe.GET("/tags/:id/", handlers.GetTag)
		recipe.PUT("/tags/:id/", handlers.UpdateTag)
		recipe.PATCH("/tags/:id/", handlers.UpdateTag)
		recipe.DELETE("/tags/:id/", handlers.DeleteTag)

		recipe.GET("/ingredients/", handlers.ListIngredients)
		recipe.POST("/ingredients/", handlers.CreateIngredient)
		recipe.GET("/ingredients/:id/", handlers.GetIngredient)
		recipe.PUT("/ingredients/:id/", handlers.UpdateIngredient)
		recipe.PATCH("/ingredients/:id/", handlers.UpdateIngredient)
		recipe.DELETE("/ingredients/:id/", handlers.DeleteIngredient)
	}

	// STEP 3: Start the web server
	r.Run(":" + cfg.Port) // Start the web server on the configured port
}
