package handlers

import (
	"context"
	"errors"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/backend"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
)

// OrderHandler answers order-status queries, collecting an order id from the
// user when the session does not already hold one.
type OrderHandler struct {
	orders   *backend.Orders
	session  *session.Session
	catalog  *catalog.Catalog
	prompter Prompter
	display  Display
	maxTries int
}

func NewOrderHandler(orders *backend.Orders, sess *session.Session, cat *catalog.Catalog, prompter Prompter, display Display, maxTries int) *OrderHandler {
	return &OrderHandler{orders: orders, session: sess, catalog: cat, prompter: prompter, display: display, maxTries: maxTries}
}

func (h *OrderHandler) Handle(_ context.Context, _ string) (string, error) {
	// A remembered id is trusted without re-validation and, deliberately,
	// without a retry loop when it no longer resolves.
	if id, ok := h.session.Get(session.KeyOrderID); ok {
		resp, err := h.orders.Retrieve(id)
		if errors.Is(err, errx.ErrOrderNotFound) {
			return h.catalog.Render(catalog.CategoryOrderNotFound, map[string]string{"order_id": id}), nil
		}
		return resp, err
	}

	for attempt := 0; attempt < h.maxTries; attempt++ {
		id := h.prompter.PromptNumericID(catalog.CategoryOrderID)
		resp, err := h.orders.Retrieve(id)
		if err == nil {
			h.session.Set(session.KeyOrderID, id)
			return resp, nil
		}
		if !errors.Is(err, errx.ErrOrderNotFound) {
			return "", err
		}
		notFound := h.catalog.Render(catalog.CategoryOrderNotFound, map[string]string{"order_id": id})
		h.session.Append("PirateEase: " + notFound)
		h.display.Show(notFound)
	}
	return h.catalog.Pick(catalog.CategoryRetryExhausted), nil
}

var _ QueryHandler = (*OrderHandler)(nil)
