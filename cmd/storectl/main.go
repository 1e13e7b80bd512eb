package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ratehub/store-rating-api/internal/client"
)

// storectl logs in against a running API server and prints the dashboard
// matching the account's role, the same dispatch the web client performs.
func main() {
	server := flag.String("server", "http://localhost:5000", "API base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*server)
	sess := client.NewSession(api)
	if err := sess.Login(ctx, *email, *password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	switch sess.View() {
	case client.ViewAdminDashboard:
		printAdmin(ctx, api)
	case client.ViewOwnerDashboard:
		printOwner(ctx, api)
	case client.ViewUserDashboard:
		printUser(ctx, api)
	default:
		fmt.Printf("access denied: role %q is not recognized\n", sess.Role())
		sess.Logout()
		os.Exit(1)
	}
}

func printAdmin(ctx context.Context, api *client.Client) {
	users, err := api.Users(ctx)
	if err != nil {
		log.Fatalf("fetch users: %v", err)
	}
	count, err := api.RatingsCount(ctx)
	if err != nil {
		log.Fatalf("fetch rating count: %v", err)
	}
	fmt.Printf("users: %d, total ratings: %d\n", len(users), count)
	for _, u := range users {
		fmt.Printf("  #%d %s <%s> role=%s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

func printOwner(ctx context.Context, api *client.Client) {
	rollups, err := api.OwnerRollup(ctx)
	if err != nil {
		log.Fatalf("fetch owner rollup: %v", err)
	}
	for _, r := range rollups {
		if r.AvgRating == nil {
			fmt.Printf("  %s: no ratings yet\n", r.StoreName)
			continue
		}
		fmt.Printf("  %s: avg %.2f over %d ratings\n", r.StoreName, *r.AvgRating, r.TotalRatings)
	}
}

func printUser(ctx context.Context, api *client.Client) {
	stores, err := api.Stores(ctx)
	if err != nil {
		log.Fatalf("fetch stores: %v", err)
	}
	for _, s := range stores {
		fmt.Printf("  #%d %s (%s): avg %.2f\n", s.ID, s.Name, s.Address, s.AvgRating)
	}
}
