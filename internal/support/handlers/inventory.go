package handlers

import (
	"context"

	"github.com/brysenPfingsten/PirateEase/internal/support/backend"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
)

// InventoryHandler answers product availability queries. The item name is
// always collected via prompt; the triggering query text only routed us here.
type InventoryHandler struct {
	inventory *backend.Inventory
	session   *session.Session
	prompter  Prompter
}

func NewInventoryHandler(inv *backend.Inventory, sess *session.Session, prompter Prompter) *InventoryHandler {
	return &InventoryHandler{inventory: inv, session: sess, prompter: prompter}
}

func (h *InventoryHandler) Handle(_ context.Context, _ string) (string, error) {
	item := h.prompter.PromptText(catalog.CategoryProduct)
	h.session.Set(session.KeyItemName, item)
	return h.inventory.Check(item), nil
}

var _ QueryHandler = (*InventoryHandler)(nil)
