// ingredient.go - Handlers for the ingredient endpoints

package handlers // Declares the package name

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"go-recipe-api/database"   // Database connection
	"go-recipe-api/middleware" // For resolving the authenticated user
	"go-recipe-api/models"     // Ingredient model

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListIngredients handles GET /recipe/ingredients/
// Same shape as the tag list: owner-scoped, name descending, and
// ?assigned_only=1 restricts to ingredients used by at least one recipe.
func ListIngredients(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	query := database.DB.Model(&models.Ingredient{}).
		Where("ingredients.user_id = ?", user.ID).
		Order("ingredients.name DESC")

	if assignedOnly(c) {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Distinct("ingredients.*")
	}

	ingredients := []models.Ingredient{}
	if err := query.Find(&ingredients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// CreateIngredient handles POST /recipe/ingredients/
func CreateIngredient(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := models.Ingredient{Name: input.Name, UserID: user.ID}
	if err := database.DB.Create(&ingredient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

// GetIngredient handles GET /recipe/ingredients/:id/
func GetIngredient(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	ingredient, ok := ownedIngredient(c, user.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// UpdateIngredient handles PUT and PATCH /recipe/ingredients/:id/
func UpdateIngredient(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	ingredient, ok := ownedIngredient(c, user.ID)
	if !ok {
		return
	}

	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient.Name = input.Name
	if err := database.DB.Save(ingredient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient handles DELETE /recipe/ingredients/:id/
func DeleteIngredient(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	ingredient, ok := ownedIngredient(c, user.ID)
	if !ok {
		return
	}

	if err := database.DB.Delete(ingredient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedIngredient looks up the :id path parameter scoped to the given owner.
func ownedIngredient(c *gin.Context, userID uint) (*models.Ingredient, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return nil, false
	}

	var ingredient models.Ingredient
	if err := database.DB.Where("user_id = ?", userID).First(&ingredient, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return nil, false
	}
	return &ingredient, true
}
