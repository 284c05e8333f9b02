// recipe.go - Handlers for the recipe endpoints
//
// Every endpoint is ownership-scoped: queries only ever see rows whose
// user_id matches the authenticated user, and a recipe owned by someone
// else answers 404 rather than 403 so existence never leaks.

package handlers // Declares the package name

import ( // Import required packages
	"image"         // Image decoding (upload validation)
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"net/http"      // HTTP status codes
	"os"            // Image file lifecycle
	"path/filepath" // Upload directory handling
	"strconv"       // Query parameter parsing
	"strings"       // Comma-separated id lists

	"go-recipe-api/database"   // Database connection
	"go-recipe-api/middleware" // For resolving the authenticated user
	"go-recipe-api/models"     // Entity models

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point price
	"gorm.io/gorm/clause"           // For deleting join rows with a recipe
)

type NameInput struct { // Nested tag/ingredient payload item
	Name string `json:"name" binding:"required"`
}

type CreateRecipeInput struct { // Struct for recipe creation and full updates
	// TimeMinutes and Price are pointers so "required" is a presence
	// check: an omitted field answers 400 while a literal 0 still passes.
	Title       string           `json:"title" binding:"required"`
	TimeMinutes *int             `json:"time_minutes" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Description string           `json:"description"`
	Link        string           `json:"link"`
	Tags        *[]NameInput     `json:"tags"`
	Ingredients *[]NameInput     `json:"ingredients"`
}

type UpdateRecipeInput struct { // Struct for partial updates, all fields optional
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link"`
	Tags        *[]NameInput     `json:"tags"`
	Ingredients *[]NameInput     `json:"ingredients"`
}

// ListRecipes handles GET /recipe/recipes/
// Supports ?tags=1,2 and ?ingredients=3,4 filters (union over the given ids).
func ListRecipes(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	query := database.DB.Model(&models.Recipe{}).
		Where("recipes.user_id = ?", user.ID).
		Order("recipes.id DESC").
		Preload("Tags").
		Preload("Ingredients")

	if ids := parseIDList(c.Query("tags")); len(ids) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", ids).
			Distinct("recipes.*")
	}
	if ids := parseIDList(c.Query("ingredients")); len(ids) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ids).
			Distinct("recipes.*")
	}

	recipes := []models.Recipe{}
	if err := query.Find(&recipes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /recipe/recipes/:id/
func GetRecipe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	recipe, ok := ownedRecipe(c, user.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe handles POST /recipe/recipes/
// Nested tags/ingredients are resolved with get-or-create semantics.
func CreateRecipe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var input CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := models.Recipe{
		Title:       input.Title,
		TimeMinutes: *input.TimeMinutes,
		Price:       *input.Price,
		Description: input.Description,
		Link:        input.Link,
		UserID:      user.ID, // Owner comes from the token, never the payload
	}
	if err := database.DB.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := setRelations(&recipe, user.ID, input.Tags, input.Ingredients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reloadRecipe(&recipe)
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles PUT /recipe/recipes/:id/ (full update)
func UpdateRecipe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	recipe, ok := ownedRecipe(c, user.ID)
	if !ok {
		return
	}

	var input CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe.Title = input.Title
	recipe.TimeMinutes = *input.TimeMinutes
	recipe.Price = *input.Price
	recipe.Description = input.Description
	recipe.Link = input.Link

	saveRecipe(c, recipe, user.ID, input.Tags, input.Ingredients)
}

// PatchRecipe handles PATCH /recipe/recipes/:id/ (partial update)
// Omitted fields, including the nested lists, are left untouched; an
// explicit empty list clears the relation set.
func PatchRecipe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	recipe, ok := ownedRecipe(c, user.ID)
	if !ok {
		return
	}

	var input UpdateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.TimeMinutes != nil {
		recipe.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		recipe.Price = *input.Price
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Link != nil {
		recipe.Link = *input.Link
	}

	saveRecipe(c, recipe, user.ID, input.Tags, input.Ingredients)
}

// DeleteRecipe handles DELETE /recipe/recipes/:id/
// Removes the row, its join entries and any stored image file.
func DeleteRecipe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	recipe, ok := ownedRecipe(c, user.ID)
	if !ok {
		return
	}

	if err := database.DB.Select(clause.Associations).Delete(recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if recipe.Image != "" {
		_ = os.Remove(recipe.Image) // Avoid orphaned image files
	}

	c.Status(http.StatusNoContent)
}

// UploadRecipeImage handles POST /recipe/recipes/:id/upload-image/
// The multipart "image" field must decode as JPEG or PNG; anything else
// is rejected with 400 and leaves the recipe untouched.
func UploadRecipeImage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	recipe, ok := ownedRecipe(c, user.ID)
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	// Validate by actually decoding the payload
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, _, err = image.Decode(file)
	file.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload a valid image"})
		return
	}

	path := models.RecipeImageFilePath(header.Filename)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := c.SaveUploadedFile(header, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Overwriting an image removes the previous file
	if recipe.Image != "" && recipe.Image != path {
		_ = os.Remove(recipe.Image)
	}

	recipe.Image = path
	if err := database.DB.Save(recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": recipe.ID, "image": recipe.Image})
}

// ownedRecipe looks up the :id path parameter scoped to the given owner.
// Answers 404 for unknown ids and for other users' recipes alike.
func ownedRecipe(c *gin.Context, userID uint) (*models.Recipe, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return nil, false
	}

	var recipe models.Recipe
	if err := database.DB.Preload("Tags").Preload("Ingredients").
		Where("user_id = ?", userID).First(&recipe, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return nil, false
	}
	return &recipe, true
}

// saveRecipe persists scalar changes plus any provided relation lists,
// then answers with the reloaded recipe.
func saveRecipe(c *gin.Context, recipe *models.Recipe, userID uint, tags, ingredients *[]NameInput) {
	if err := database.DB.Save(recipe).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := setRelations(recipe, userID, tags, ingredients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reloadRecipe(recipe)
	c.JSON(http.StatusOK, recipe)
}

// setRelations replaces the recipe's tag/ingredient sets with the resolved
// records. A nil list means "leave untouched", an empty list clears the set.
func setRelations(recipe *models.Recipe, userID uint, tags, ingredients *[]NameInput) error {
	if tags != nil {
		resolved, err := resolveTags(userID, *tags)
		if err != nil {
			return err
		}
		if err := database.DB.Model(recipe).Association("Tags").Replace(&resolved); err != nil {
			return err
		}
	}
	if ingredients != nil {
		resolved, err := resolveIngredients(userID, *ingredients)
		if err != nil {
			return err
		}
		if err := database.DB.Model(recipe).Association("Ingredients").Replace(&resolved); err != nil {
			return err
		}
	}
	return nil
}

// resolveTags maps nested names to the user's tags, creating missing ones.
func resolveTags(userID uint, items []NameInput) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(items))
	for _, item := range items {
		var tag models.Tag
		if err := database.DB.
			Where(models.Tag{Name: item.Name, UserID: userID}).
			FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// resolveIngredients does the same for ingredients.
func resolveIngredients(userID uint, items []NameInput) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(items))
	for _, item := range items {
		var ingredient models.Ingredient
		if err := database.DB.
			Where(models.Ingredient{Name: item.Name, UserID: userID}).
			FirstOrCreate(&ingredient).Error; err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

// reloadRecipe refreshes the relation sets after a write.
func reloadRecipe(recipe *models.Recipe) {
	database.DB.Preload("Tags").Preload("Ingredients").First(recipe, recipe.ID)
}

// parseIDList parses a comma-separated id list query parameter.
func parseIDList(raw string) []uint {
	if raw == "" {
		return nil
	}
	ids := []uint{}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
