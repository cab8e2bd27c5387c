package routes

import (
	"savorybook/handlers"
	"savorybook/middleware"
	"savorybook/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	public := r.Group("/api/auth")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
	}

	// ── Legacy routes (open, token optional) ───────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthOptional())
	{
		// Restaurants
		api.GET("/restaurants", handlers.ListRestaurants)
		api.GET("/restaurants/:id", handlers.GetRestaurant)
		api.GET("/restaurants/:id/menu", handlers.GetMenu)
		api.GET("/restaurants/:id/stats", handlers.GetRestaurantStats)
		api.GET("/restaurants/:id/qr", handlers.GetRestaurantQR)
		api.GET("/restaurants/owner/:ownerId", handlers.GetRestaurantByOwner)
		api.POST("/restaurants", handlers.SaveRestaurant)
		api.POST("/restaurants/:id/review", handlers.AddReview)

		// Bookings
		api.POST("/bookings", handlers.CreateBooking)
		api.GET("/bookings/user/:email", handlers.GetUserBookings)
		api.GET("/bookings/restaurant/:restaurantId", handlers.GetRestaurantBookings)
		api.PUT("/bookings/:id", handlers.UpdateBooking)
		api.GET("/bookings/:id/receipt", handlers.GetBookingReceipt)

		// Demo data + state machine info
		api.GET("/seed", handlers.Seed)
		api.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	owner := r.Group("/api/owner")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		owner.POST("/restaurants/:id/menu", handlers.AddMenuItem)
		owner.DELETE("/restaurants/:id/menu/:itemId", handlers.DeleteMenuItem)
	}
}
