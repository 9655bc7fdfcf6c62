package backend

import (
	"fmt"
	"strconv"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
)

// Refunds processes refunds of past orders. The refunded flag is the one
// piece of write-state outside the session and the agent directory; it flips
// to true at most once and later calls report the refund as already
// processed.
type Refunds struct {
	orders  map[int]*model.PastOrder
	catalog *catalog.Catalog
}

func NewRefunds(orders map[int]*model.PastOrder, cat *catalog.Catalog) *Refunds {
	return &Refunds{orders: orders, catalog: cat}
}

// Refund marks the past order with the given id as refunded. Idempotent on
// the refunded flag. Unknown or non-numeric ids return
// errx.ErrPastOrderNotFound.
func (s *Refunds) Refund(id string) (string, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return "", fmt.Errorf("refund id %q: %w", id, errx.ErrPastOrderNotFound)
	}
	order, ok := s.orders[n]
	if !ok {
		return "", fmt.Errorf("past order %d: %w", n, errx.ErrPastOrderNotFound)
	}
	if order.Refunded {
		return s.catalog.Render(catalog.CategoryRefundProcessed, map[string]string{"order_id": id}), nil
	}
	order.Refunded = true
	logx.Info().Int("order_id", n).Msg("refund submitted")
	return s.catalog.Render(catalog.CategoryRefundSubmitted, map[string]string{"order_id": id}), nil
}
