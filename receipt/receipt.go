// Package receipt renders booking confirmations and share codes.
package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"savorybook/models"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// ShareQRSize is the default edge of the share code in pixels
const ShareQRSize = 150

// Bounds on a requested share code edge. The image is size² pixels.
const (
	MinQRSize = 64
	MaxQRSize = 1024
)

var ErrQRSize = fmt.Errorf("qr size must be between %d and %d", MinQRSize, MaxQRSize)

// RestaurantLink is the public page a share code points to
func RestaurantLink(origin, restaurantID string) string {
	return strings.TrimRight(origin, "/") + "/#/restaurant/" + restaurantID
}

// ShareQR encodes link as a PNG QR code
func ShareQR(link string, size int) ([]byte, error) {
	if link == "" {
		return nil, fmt.Errorf("share qr: empty link")
	}
	if size == 0 {
		size = ShareQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, ErrQRSize
	}
	return qrcode.Encode(link, qrcode.Medium, size)
}

// Payload is what the receipt's QR code carries: booking id, restaurant
// and slot, enough for the host stand to find the booking.
func Payload(b models.Booking) string {
	return fmt.Sprintf("savorybook|%s|%s|%s %s|%d", b.ID, b.RestaurantID, b.Date, b.Time, b.Guests)
}

func money(v float64) string {
	return "Rs. " + decimal.NewFromFloat(v).StringFixed(2)
}

// PDF renders a one page booking confirmation
func PDF(b models.Booking) ([]byte, error) {
	qrPNG, err := qrcode.Encode(Payload(b), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("receipt qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		"Restaurant: " + b.RestaurantName,
		"Booking ID: " + b.ID,
		"Name: " + b.CustomerName,
		fmt.Sprintf("Date: %s at %s", b.Date, b.Time),
		fmt.Sprintf("Guests: %d", b.Guests),
		"Status: " + string(b.Status),
	}
	if b.TableType != "" {
		lines = append(lines, "Seating: "+string(b.TableType))
	}
	for _, l := range lines {
		pdf.Cell(0, 10, l)
		pdf.Ln(8)
	}

	if len(b.Items) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 10, "Pre-order")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, it := range b.Items {
			pdf.CellFormat(110, 8, fmt.Sprintf("%d x %s", it.Quantity, it.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 8, money(it.Price*float64(it.Quantity)), "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	paid := "Pay at restaurant"
	if b.IsPaid {
		paid = "Paid"
	}
	pdf.Cell(0, 10, fmt.Sprintf("Total: %s (%s, %s)", money(b.TotalAmount), b.PaymentMethod, paid))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
