// Command savorybook drives the reservation flows against the REST
// backend. When the backend is down it keeps working on the offline data.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"savorybook/config"
	"savorybook/fallback"
	"savorybook/gateway"
	"savorybook/logger"
	"savorybook/models"
	"savorybook/pricing"
	"savorybook/reservations"
)

// cartFlag collects repeated -item id=qty flags
type cartFlag pricing.Cart

func (c cartFlag) String() string { return fmt.Sprint(map[string]int(c)) }

func (c cartFlag) Set(v string) error {
	id, qty, ok := strings.Cut(v, "=")
	if !ok {
		c[v]++
		return nil
	}
	n, err := strconv.Atoi(qty)
	if err != nil {
		return fmt.Errorf("item %q: quantity must be a number", v)
	}
	c[id] = n
	return nil
}

func main() {
	cfg := config.Load()
	cart := cartFlag{}

	var (
		mode       = flag.String("mode", "", "Mode (restaurants, quote, book, bookings, dashboard)")
		backend    = flag.String("backend", cfg.BackendURL, "Backend base URL")
		restaurant = flag.String("restaurant", "", "Restaurant ID")
		owner      = flag.String("owner", "", "Owner user ID (dashboard)")
		coupon     = flag.String("coupon", "", "Offer label to apply")
		email      = flag.String("email", "", "Customer email")
		name       = flag.String("name", "", "Customer name")
		password   = flag.String("password", "", "Log in before booking (with -email)")
		phone      = flag.String("phone", "", "Customer phone")
		date       = flag.String("date", time.Now().Format(time.DateOnly), "Booking date (YYYY-MM-DD)")
		at         = flag.String("time", "19:00", "Booking time")
		guests     = flag.Int("guests", 2, "Number of guests")
		payment    = flag.String("payment", string(models.PaymentCash), "Payment method")
		payNow     = flag.Bool("pay-now", false, "Complete the online payment step")
	)
	flag.Var(cart, "item", "Menu item as id=qty (repeatable)")
	flag.Parse()

	if *mode == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg := logger.New("savorybook-cli")
	gw := gateway.New(gateway.NewClient(*backend, cfg.GatewayTimeout), fallback.New(), gateway.WithLogger(lg))
	svc := reservations.NewService(gw,
		reservations.WithPaymentDelay(cfg.PaymentDelay),
		reservations.WithLogger(lg),
	)

	var err error
	switch *mode {
	case "restaurants":
		err = listRestaurants(ctx, gw)
	case "quote":
		err = quote(ctx, gw, svc, *restaurant, pricing.Cart(cart), *email, *coupon)
	case "book":
		var user *models.User
		if *email != "" && *password != "" {
			u, lerr := gw.Login(ctx, *email, *password, models.RoleCustomer)
			if lerr != nil {
				fatal(lerr)
			}
			user = &u
		}
		var res reservations.SubmitResult
		res, err = svc.Submit(ctx, reservations.SubmitRequest{
			RestaurantID:  *restaurant,
			User:          user,
			CustomerName:  *name,
			CustomerEmail: *email,
			CustomerPhone: *phone,
			Date:          *date,
			Time:          *at,
			Guests:        *guests,
			PaymentMethod: models.PaymentMethod(*payment),
			Cart:          pricing.Cart(cart),
			Coupon:        *coupon,
			PayNow:        *payNow,
		})
		if err == nil {
			err = printJSON(res)
		}
	case "bookings":
		var bookings []models.Booking
		bookings, err = gw.UserBookings(ctx, *email)
		if err == nil {
			err = printJSON(bookings)
		}
	case "dashboard":
		var d *reservations.Dashboard
		d, err = svc.OwnerDashboard(ctx, *owner)
		if err == nil && d.Onboarding() {
			fmt.Println("No restaurant yet for this owner. Create a profile to get started.")
			return
		}
		if err == nil {
			err = printJSON(d)
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fatal(err)
	}
}

func listRestaurants(ctx context.Context, gw *gateway.Gateway) error {
	list, err := gw.ListRestaurants(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tRATING\tOFFERS")
	for _, r := range list {
		labels := make([]string, 0, len(r.Offers))
		for _, o := range r.Offers {
			labels = append(labels, o.Label)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\n", r.ID, r.Name, r.Cuisine, r.Rating, strings.Join(labels, ", "))
	}
	return tw.Flush()
}

func quote(ctx context.Context, gw *gateway.Gateway, svc *reservations.Service, restaurantID string, cart pricing.Cart, email, coupon string) error {
	r, err := gw.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	var user *models.User
	if email != "" {
		user = &models.User{Email: email}
	}
	q, err := svc.Quote(r, cart, svc.Eligibility(ctx, user), coupon)
	if err != nil {
		return err
	}
	return printJSON(q)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(err error) {
	log.Printf("❌ %v", err)
	os.Exit(1)
}
