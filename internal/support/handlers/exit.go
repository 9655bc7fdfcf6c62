package handlers

import (
	"context"

	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
)

// ExitHandler produces a farewell. The caller's disconnect check recognises
// the farewell by its exit trigger phrase.
type ExitHandler struct {
	catalog *catalog.Catalog
}

func NewExitHandler(cat *catalog.Catalog) *ExitHandler {
	return &ExitHandler{catalog: cat}
}

func (h *ExitHandler) Handle(_ context.Context, _ string) (string, error) {
	return h.catalog.Pick(catalog.CategoryExit), nil
}

var _ QueryHandler = (*ExitHandler)(nil)
