// Command kitchen is a terminal dashboard for kitchen staff. It polls
// the order API, prints incoming orders with their status, and advances
// an order to its next status on request.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"tableside/internal/client"
	"tableside/internal/dashboard"
	"tableside/internal/models"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("POLL_INTERVAL", dashboard.DefaultInterval)
	viper.SetDefault("STAFF_USERNAME", "")
	viper.SetDefault("STAFF_PASSWORD", "")
	viper.AutomaticEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orderClient := client.NewOrderClient(viper.GetString("API_BASE_URL"))

	// Status updates require a staff token.
	username := viper.GetString("STAFF_USERNAME")
	if username != "" {
		if err := orderClient.Login(ctx, username, viper.GetString("STAFF_PASSWORD")); err != nil {
			log.Fatalf("Staff login failed: %v", err)
		}
		log.Printf("Logged in as %s", username)
	} else {
		log.Println("STAFF_USERNAME not set; advancing orders will be rejected")
	}

	var mu sync.Mutex
	var current []models.Order

	poller := dashboard.NewPoller(orderClient, viper.GetDuration("POLL_INTERVAL"))
	poller.OnOrders = func(orders []models.Order) {
		mu.Lock()
		current = orders
		mu.Unlock()
		render(orders)
	}
	poller.OnError = func(err error) {
		log.Printf("Dashboard error: %v", err)
	}

	go poller.Run(ctx)

	fmt.Println("Commands: a <order-id> to advance, r to refresh, q to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q":
			return
		case line == "r":
			poller.Refresh(ctx)
		case strings.HasPrefix(line, "a "):
			id := strings.TrimSpace(strings.TrimPrefix(line, "a "))
			advance(ctx, poller, id, snapshot(&mu, &current))
		case line == "":
		default:
			fmt.Println("Unknown command. Use: a <order-id>, r, q")
		}
	}
}

func snapshot(mu *sync.Mutex, orders *[]models.Order) []models.Order {
	mu.Lock()
	defer mu.Unlock()
	return *orders
}

func advance(ctx context.Context, poller *dashboard.Poller, id string, orders []models.Order) {
	for _, order := range orders {
		if order.ID != id {
			continue
		}
		next, ok := order.Status.Next()
		if !ok {
			fmt.Printf("Order %s is already completed\n", id)
			return
		}
		if err := poller.Advance(ctx, order); err != nil {
			fmt.Printf("Could not advance order %s: %v\n", id, err)
			return
		}
		fmt.Printf("Order %s marked as %s\n", id, next)
		return
	}
	fmt.Printf("No order with id %s in the current list\n", id)
}

func render(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders found")
		return
	}

	fmt.Printf("\n%-38s %-10s %-8s %-10s %s\n", "ORDER", "STATUS", "TABLE", "TOTAL", "ITEMS")
	for _, order := range orders {
		items := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, fmt.Sprintf("%dx %s", item.Quantity, item.Name))
		}
		fmt.Printf("%-38s %-10s %-8s $%-9.2f %s\n",
			order.ID, order.Status, order.TableNumber, order.TotalAmount, strings.Join(items, ", "))
		if next, ok := order.Status.Next(); ok {
			fmt.Printf("%38s   next: %s\n", "", next)
		}
	}
}
