package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brysenPfingsten/PirateEase/internal/support/backend"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
)

func newRefundFixture(prompter *scriptedPrompter, display *recordingDisplay) (*RefundHandler, *session.Session) {
	cat := handlerCatalog()
	refunds := backend.NewRefunds(map[int]*model.PastOrder{
		101: {ID: 101, CustomerName: "Mary Kidd"},
		102: {ID: 102, CustomerName: "Israel Hands", Refunded: true},
	}, cat)
	sess := session.New()
	return NewRefundHandler(refunds, sess, cat, prompter, display, 3), sess
}

func TestRefundHandlerCollectsReason(t *testing.T) {
	prompter := &scriptedPrompter{
		idReplies:   []string{"101"},
		textReplies: []string{"the sail arrived torn"},
	}
	h, sess := newRefundFixture(prompter, &recordingDisplay{})

	got, err := h.Handle(context.Background(), "refund my order")
	require.NoError(t, err)
	assert.Equal(t, "Refund for order 101 submitted.", got)
	assert.Equal(t, []string{catalog.CategoryRefundID}, prompter.idCategories)
	assert.Equal(t, []string{catalog.CategoryRefundReason}, prompter.textCategories)

	id, ok := sess.Get(session.KeyRefundID)
	require.True(t, ok)
	assert.Equal(t, "101", id)
}

func TestRefundHandlerAlreadyProcessed(t *testing.T) {
	prompter := &scriptedPrompter{
		idReplies:   []string{"102"},
		textReplies: []string{"changed me mind"},
	}
	h, _ := newRefundFixture(prompter, &recordingDisplay{})

	got, err := h.Handle(context.Background(), "I want my money back")
	require.NoError(t, err)
	assert.Equal(t, "Order 102 was already refunded.", got)
}

func TestRefundHandlerRemembersID(t *testing.T) {
	prompter := &scriptedPrompter{}
	h, sess := newRefundFixture(prompter, &recordingDisplay{})
	sess.Set(session.KeyRefundID, "101")

	got, err := h.Handle(context.Background(), "refund my order")
	require.NoError(t, err)
	assert.Equal(t, "Refund for order 101 submitted.", got)
	assert.Empty(t, prompter.idCategories)
	assert.Empty(t, prompter.textCategories, "remembered id skips the reason prompt")

	// Asking again with the id remembered reports the refund as done.
	got, err = h.Handle(context.Background(), "refund my order")
	require.NoError(t, err)
	assert.Equal(t, "Order 101 was already refunded.", got)
}

func TestRefundHandlerGivesUp(t *testing.T) {
	prompter := &scriptedPrompter{idReplies: []string{"7", "8", "9"}}
	display := &recordingDisplay{}
	h, sess := newRefundFixture(prompter, display)

	got, err := h.Handle(context.Background(), "refund my order")
	require.NoError(t, err)
	assert.Equal(t, "Let us try somethin' else, matey.", got)
	assert.Len(t, display.shown, 3)
	assert.False(t, sess.Has(session.KeyRefundID))
}
