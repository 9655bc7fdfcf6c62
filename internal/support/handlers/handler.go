// Package handlers implements one handler per intent plus the registry that
// resolves them. Handlers compose responses from the backend services, the
// live-agent directory and the response catalog, and may drive a prompt loop
// to collect missing input.
package handlers

import (
	"context"

	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

// QueryHandler handles one routed user query and returns the response text.
// Recoverable conditions (unknown ids, empty agent pool) come back as
// ordinary response strings; an error means a fault the turn cannot recover
// from.
type QueryHandler interface {
	Handle(ctx context.Context, query string) (string, error)
}

// Prompter collects input from the user mid-turn. Implementations block until
// input is supplied and take care of transcript recording and re-prompting on
// invalid (non-numeric) input; handlers only ever see usable values.
type Prompter interface {
	// PromptNumericID asks with the given response category until the user
	// supplies an integer-parseable string, and returns it.
	PromptNumericID(category string) string
	// PromptText asks with the given response category and returns the raw
	// trimmed reply.
	PromptText(category string) string
}

// Display is the side-effecting presentation sink for mid-turn messages.
type Display interface {
	Show(text string)
}

// Registry is the fixed intent-to-handler mapping. Dispatch is total: every
// unregistered intent resolves to the fallback handler.
type Registry struct {
	handlers map[model.Intent]QueryHandler
	fallback QueryHandler
}

func NewRegistry(handlers map[model.Intent]QueryHandler, fallback QueryHandler) *Registry {
	return &Registry{handlers: handlers, fallback: fallback}
}

// Resolve returns the handler registered for the intent, or the fallback.
func (r *Registry) Resolve(intent model.Intent) QueryHandler {
	if h, ok := r.handlers[intent]; ok {
		return h
	}
	return r.fallback
}
