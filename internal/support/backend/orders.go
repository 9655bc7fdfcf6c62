// Package backend implements the lookup services the query handlers call
// into: order tracking, refunds and inventory availability. Each service owns
// its table and exposes one domain operation.
package backend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

// Orders retrieves and formats outgoing orders.
type Orders struct {
	orders  map[int]*model.Order
	catalog *catalog.Catalog
}

func NewOrders(orders map[int]*model.Order, cat *catalog.Catalog) *Orders {
	return &Orders{orders: orders, catalog: cat}
}

// Retrieve formats the arrival estimate for the order with the given id.
// A pure function of the table and the id: the same existing id always yields
// equal strings. Unknown or non-numeric ids return errx.ErrOrderNotFound.
func (s *Orders) Retrieve(id string) (string, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return "", fmt.Errorf("order id %q: %w", id, errx.ErrOrderNotFound)
	}
	order, ok := s.orders[n]
	if !ok {
		return "", fmt.Errorf("order %d: %w", n, errx.ErrOrderNotFound)
	}
	return s.catalog.Render(catalog.CategoryOrderArrival, map[string]string{
		"order_id":      id,
		"customer_name": order.CustomerName,
		"days":          formatDays(order.ETAHours),
	}), nil
}

// formatDays converts an hour count to days rounded to one decimal, e.g.
// 48 -> "2.0".
func formatDays(hours int) string {
	days := math.Round(float64(hours)/24*10) / 10
	return strconv.FormatFloat(days, 'f', 1, 64)
}
