package handlers

import (
	"net/http"
	"strings"
	"time"

	"savorybook/config"
	"savorybook/events"
	"savorybook/middleware"
	"savorybook/models"
	"savorybook/receipt"
	"savorybook/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBooking stores a submitted booking. Prices and totals are the
// client's snapshot; status is derived from the payment outcome.
func CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking.CustomerEmail = strings.ToLower(strings.TrimSpace(booking.CustomerEmail))
	if err := models.Validate(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, "id = ?", booking.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	if booking.RestaurantName == "" {
		booking.RestaurantName = restaurant.Name
	}
	if booking.UserID == "" {
		if id := middleware.GetUserID(c); id != "" {
			booking.UserID = id
		}
	}

	booking.Status, booking.IsPaid = statemachine.InitialState(booking.PaymentMethod, booking.IsPaid)
	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now()
	if booking.Items == nil {
		booking.Items = []models.OrderItem{}
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	publish(c, events.BookingCreated, booking, "")
	c.JSON(http.StatusOK, booking)
}

// GetUserBookings returns every booking made with the given email
func GetUserBookings(c *gin.Context) {
	bookings := []models.Booking{}
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	if err := config.DB.Where("customer_email = ?", email).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingReceipt returns the booking confirmation as a PDF
func GetBookingReceipt(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if role, ok := middleware.GetRole(c); ok && role == models.RoleCustomer && booking.CustomerEmail != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking does not belong to you"})
		return
	}

	pdf, err := receipt.PDF(booking)
	if err != nil {
		Log.Error(c.Request.Context(), "render_receipt", "receipt not rendered", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=booking-"+booking.ID+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
