package handlers

import (
	"context"
	"errors"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/backend"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
)

// RefundHandler processes refund requests. Shares the id-collection protocol
// with OrderHandler and additionally collects a free-text refund reason after
// a successful lookup. The reason lands in the transcript for the agent
// handoff; the refund itself does not depend on it.
type RefundHandler struct {
	refunds  *backend.Refunds
	session  *session.Session
	catalog  *catalog.Catalog
	prompter Prompter
	display  Display
	maxTries int
}

func NewRefundHandler(refunds *backend.Refunds, sess *session.Session, cat *catalog.Catalog, prompter Prompter, display Display, maxTries int) *RefundHandler {
	return &RefundHandler{refunds: refunds, session: sess, catalog: cat, prompter: prompter, display: display, maxTries: maxTries}
}

func (h *RefundHandler) Handle(_ context.Context, _ string) (string, error) {
	if id, ok := h.session.Get(session.KeyRefundID); ok {
		resp, err := h.refunds.Refund(id)
		if errors.Is(err, errx.ErrPastOrderNotFound) {
			return h.catalog.Render(catalog.CategoryOrderNotFound, map[string]string{"order_id": id}), nil
		}
		return resp, err
	}

	for attempt := 0; attempt < h.maxTries; attempt++ {
		id := h.prompter.PromptNumericID(catalog.CategoryRefundID)
		resp, err := h.refunds.Refund(id)
		if err == nil {
			h.session.Set(session.KeyRefundID, id)
			h.prompter.PromptText(catalog.CategoryRefundReason)
			return resp, nil
		}
		if !errors.Is(err, errx.ErrPastOrderNotFound) {
			return "", err
		}
		notFound := h.catalog.Render(catalog.CategoryOrderNotFound, map[string]string{"order_id": id})
		h.session.Append("PirateEase: " + notFound)
		h.display.Show(notFound)
	}
	return h.catalog.Pick(catalog.CategoryRetryExhausted), nil
}

var _ QueryHandler = (*RefundHandler)(nil)
