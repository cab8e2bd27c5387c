package handlers

import (
	"log/slog"
	"time"

	"savorybook/config"
	"savorybook/events"
	"savorybook/models"

	"github.com/gin-gonic/gin"
)

var (
	// Events receives booking events; main swaps in the AMQP publisher
	Events events.Publisher = events.Nop{}

	Log = config.Log
)

// publish never fails the request; a broker error is only logged
func publish(c *gin.Context, kind events.Kind, b models.Booking, previous models.BookingStatus) {
	ctx := c.Request.Context()
	e := events.NewBookingEvent(kind, b, previous, time.Now())
	if err := Events.Publish(ctx, e); err != nil {
		Log.Error(ctx, "publish_event", "booking event not published", err,
			slog.String("kind", string(kind)), slog.String("booking_id", b.ID))
	}
}
