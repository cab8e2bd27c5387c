package handlers

import (
	"errors"
	"net/http"
	"time"

	"savorybook/config"
	"savorybook/dashboard"
	"savorybook/events"
	"savorybook/middleware"
	"savorybook/models"
	"savorybook/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetRestaurantBookings returns all bookings for one restaurant, newest first
func GetRestaurantBookings(c *gin.Context) {
	bookings := []models.Booking{}
	if err := config.DB.Where("restaurant_id = ?", c.Param("restaurantId")).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetRestaurantStats returns the owner dashboard view for a restaurant
func GetRestaurantStats(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("restaurant_id = ?", restaurantID).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, dashboard.Build(bookings, time.Now()))
}

// UpdateBooking applies a partial update (status and/or isPaid) through
// the booking lifecycle.
func UpdateBooking(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.Status != nil && !update.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(*update.Status)})
		return
	}

	var booking models.Booking
	err := config.DB.First(&booking, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking"})
		return
	}

	actor := actorFor(c)
	if actor == statemachine.ActorCustomer && booking.CustomerEmail != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking does not belong to you"})
		return
	}

	prevStatus := booking.Status
	if err := statemachine.Apply(&booking, update, actor); err != nil {
		var te *statemachine.TransitionError
		if errors.As(err, &te) || errors.Is(err, statemachine.ErrUnpay) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Invalid state transition",
				"current_status":    prevStatus,
				"reason":            err.Error(),
				"valid_next_states": statemachine.ValidTransitionsFrom(prevStatus),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&booking).Select("status", "is_paid").Updates(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	if booking.Status != prevStatus {
		publish(c, events.BookingStatusChanged, booking, prevStatus)
	}
	c.JSON(http.StatusOK, booking)
}

// actorFor maps the optional session to a lifecycle actor. Requests without
// a token come from the legacy owner dashboard.
func actorFor(c *gin.Context) statemachine.Actor {
	if role, ok := middleware.GetRole(c); ok && role == models.RoleCustomer {
		return statemachine.ActorCustomer
	}
	return statemachine.ActorOwner
}
