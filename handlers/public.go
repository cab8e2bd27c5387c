package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"savorybook/config"
	"savorybook/models"
	"savorybook/receipt"
	"savorybook/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns every restaurant as a raw array (public)
func ListRestaurants(c *gin.Context) {
	restaurants := []models.Restaurant{}
	query := config.DB.Order("id")

	// Novelty: filter by cuisine or search by name
	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine = ?", cuisine)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant returns a single restaurant
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetMenu returns the menu for a specific restaurant (public)
func GetMenu(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	items := []models.MenuItem{}
	category := c.Query("category")
	for _, m := range restaurant.Menu {
		if category == "" || strings.EqualFold(m.Category, category) {
			items = append(items, m)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// GetRestaurantQR returns a PNG QR code linking to the restaurant's page.
// The page origin comes from ?origin= or the Origin header.
func GetRestaurantQR(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Select("id").First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	origin := c.DefaultQuery("origin", c.GetHeader("Origin"))
	if origin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin is required"})
		return
	}
	size := receipt.ShareQRSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < receipt.MinQRSize || n > receipt.MaxQRSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": receipt.ErrQRSize.Error()})
			return
		}
		size = n
	}
	png, err := receipt.ShareQR(receipt.RestaurantLink(origin, restaurant.ID), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetStateMachineInfo returns the booking lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	states := []models.BookingStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted,
	}
	next := make(map[models.BookingStatus][]models.BookingStatus, len(states))
	terminal := []models.BookingStatus{}
	for _, s := range states {
		next[s] = statemachine.ValidTransitionsFrom(s)
		if next[s] == nil {
			next[s] = []models.BookingStatus{}
		}
		if s.IsTerminal() {
			terminal = append(terminal, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"states":          states,
		"initial_state":   models.StatusPending,
		"terminal_states": terminal,
		"transitions":     statemachine.GetAllTransitions(),
		"next":            next,
		"notes": []string{
			"A paid online booking starts Confirmed",
			"Marking a Pending booking paid also confirms it",
			"A paid booking cannot be marked unpaid",
		},
	})
}
