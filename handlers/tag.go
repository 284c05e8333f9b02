// tag.go - Handlers for the tag endpoints

package handlers // Declares the package name

import (
	"net/http" // HTTP status codes
	"strconv"  // Query parameter parsing

	"go-recipe-api/database"   // Database connection
	"go-recipe-api/middleware" // For resolving the authenticated user
	"go-recipe-api/models"     // Tag model

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListTags handles GET /recipe/tags/
// Owner-scoped, ordered by name descending. With ?assigned_only=1 only tags
// attached to at least one recipe are returned, de-duplicated.
func ListTags(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	query := database.DB.Model(&models.Tag{}).
		Where("tags.user_id = ?", user.ID).
		Order("tags.name DESC")

	if assignedOnly(c) {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Distinct("tags.*")
	}

	tags := []models.Tag{}
	if err := query.Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag handles POST /recipe/tags/
func CreateTag(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}

	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := models.Tag{Name: input.Name, UserID: user.ID}
	if err := database.DB.Create(&tag).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// GetTag handles GET /recipe/tags/:id/
func GetTag(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	tag, ok := ownedTag(c, user.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tag)
}

// UpdateTag handles PUT and PATCH /recipe/tags/:id/
func UpdateTag(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	tag, ok := ownedTag(c, user.ID)
	if !ok {
		return
	}

	var input NameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag.Name = input.Name
	if err := database.DB.Save(tag).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles DELETE /recipe/tags/:id/
func DeleteTag(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return
	}
	tag, ok := ownedTag(c, user.ID)
	if !ok {
		return
	}

	if err := database.DB.Delete(tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedTag looks up the :id path parameter scoped to the given owner.
func ownedTag(c *gin.Context, userID uint) (*models.Tag, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return nil, false
	}

	var tag models.Tag
	if err := database.DB.Where("user_id = ?", userID).First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return nil, false
	}
	return &tag, true
}

// assignedOnly reports whether the assigned_only query parameter is truthy.
func assignedOnly(c *gin.Context) bool {
	value, err := strconv.Atoi(c.DefaultQuery("assigned_only", "0"))
	return err == nil && value != 0
}
