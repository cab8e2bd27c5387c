package handlers

import (
	"net/http"

	"savorybook/config"

	"github.com/gin-gonic/gin"
)

// Seed replaces the restaurant catalog with the demo data. Bookings and
// users are kept.
func Seed(c *gin.Context) {
	n, err := config.Reseed(config.DB)
	if err != nil {
		Log.Error(c.Request.Context(), "seed", "reseed failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database Seeded Successfully", "count": n})
}
