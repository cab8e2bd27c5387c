package handlers

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"savorybook/config"
	"savorybook/middleware"
	"savorybook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Restaurant Management ────────────────────────────────────────────────────

// GetRestaurantByOwner fetches the restaurant owned by ownerId
func GetRestaurantByOwner(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Where("owner_id = ?", c.Param("ownerId")).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// SaveRestaurant updates the restaurant named by the body's id, or creates
// one when the id is missing.
func SaveRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.Validate(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// an owner saving without ownerId claims the restaurant
	if restaurant.OwnerID == "" {
		if role, _ := middleware.GetRole(c); role == models.RoleAdmin {
			restaurant.OwnerID = middleware.GetUserID(c)
		}
	}
	fillEmptyCollections(&restaurant)
	restaurant.RecomputeRating()

	if restaurant.ID == "" {
		restaurant.ID = uuid.NewString()
		if err := config.DB.Create(&restaurant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
			return
		}
		c.JSON(http.StatusOK, restaurant)
		return
	}

	var existing models.Restaurant
	err := config.DB.First(&existing, "id = ?", restaurant.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return
	}
	restaurant.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// AddReview appends a review and recomputes the restaurant's rating
func AddReview(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.Validate(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.Date == "" {
		review.Date = time.Now().Format(time.DateOnly)
	}

	restaurant.AddReview(review)
	if err := config.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// ── Menu Management ─────────────────────────────────────────────────────────

// AddMenuItem adds a new item to the owner's menu
func AddMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.Validate(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = "m_" + uuid.NewString()
	if item.Category == "" {
		item.Category = "Main"
	}

	restaurant.Menu = append(restaurant.Menu, item)
	if err := config.DB.Save(restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	itemID := c.Param("itemId")
	n := len(restaurant.Menu)
	restaurant.Menu = slices.DeleteFunc(restaurant.Menu, func(m models.MenuItem) bool { return m.ID == itemID })
	if len(restaurant.Menu) == n {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Save(restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ownedRestaurant loads :id and checks it belongs to the caller. It writes
// the error response itself.
func ownedRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	if restaurant.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this restaurant"})
		return nil, false
	}
	return &restaurant, true
}

func fillEmptyCollections(r *models.Restaurant) {
	if r.Offers == nil {
		r.Offers = []models.Offer{}
	}
	if r.Menu == nil {
		r.Menu = []models.MenuItem{}
	}
	if r.Tables == nil {
		r.Tables = []models.Table{}
	}
	if r.Reviews == nil {
		r.Reviews = []models.Review{}
	}
}
