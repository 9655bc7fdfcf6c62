package handlers

import (
	"context"

	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/sink"
	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
)

// DefaultHandler is the end of the routing chain: it records the query for
// offline analysis and admits the bot did not understand. Recording failures
// never fail the turn.
type DefaultHandler struct {
	recorder sink.Recorder
	catalog  *catalog.Catalog
}

func NewDefaultHandler(recorder sink.Recorder, cat *catalog.Catalog) *DefaultHandler {
	return &DefaultHandler{recorder: recorder, catalog: cat}
}

func (h *DefaultHandler) Handle(ctx context.Context, query string) (string, error) {
	if err := h.recorder.Record(ctx, query); err != nil {
		logx.Error().Err(err).Msg("failed to record unmatched query")
	}
	return h.catalog.Pick(catalog.CategoryDefault), nil
}

var _ QueryHandler = (*DefaultHandler)(nil)
