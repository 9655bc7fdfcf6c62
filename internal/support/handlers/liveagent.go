package handlers

import (
	"context"
	"errors"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/agents"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
)

// Escalation is the structured result of a live-agent escalation: the
// greeting shown to the user and the connection line naming the agent. Kept
// as two fields so callers composing their own greeting (the sentiment path)
// never have to parse handler output.
type Escalation struct {
	Greeting   string
	Connection string
}

// LiveAgentHandler escalates a conversation to a human agent: it notifies the
// pool with the transcript so far, then allocates one agent exclusively.
type LiveAgentHandler struct {
	directory *agents.Directory
	session   *session.Session
	catalog   *catalog.Catalog
}

func NewLiveAgentHandler(dir *agents.Directory, sess *session.Session, cat *catalog.Catalog) *LiveAgentHandler {
	return &LiveAgentHandler{directory: dir, session: sess, catalog: cat}
}

// Escalate notifies all pooled agents and allocates one. An empty pool is a
// recoverable condition: the connection line becomes the no-agents response.
func (h *LiveAgentHandler) Escalate(ctx context.Context) (Escalation, error) {
	h.directory.NotifyAll(ctx, h.session.Transcript())

	conn, err := h.directory.Allocate()
	if errors.Is(err, errx.ErrNoAgentAvailable) {
		conn = h.catalog.Pick(catalog.CategoryNoAgents)
	} else if err != nil {
		return Escalation{}, err
	}
	return Escalation{
		Greeting:   h.catalog.Pick(catalog.CategoryLiveAgent),
		Connection: conn,
	}, nil
}

func (h *LiveAgentHandler) Handle(ctx context.Context, _ string) (string, error) {
	esc, err := h.Escalate(ctx)
	if err != nil {
		return "", err
	}
	return esc.Greeting + "\n" + esc.Connection, nil
}

var _ QueryHandler = (*LiveAgentHandler)(nil)
