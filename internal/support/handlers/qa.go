package handlers

import (
	"context"
	"strings"
)

// QAHandler answers queries that exactly match (case-folded) an entry of the
// predefined question/answer table. A miss yields the empty string, which the
// orchestrator treats as "fall through to intent routing".
type QAHandler struct {
	queries map[string]string
}

func NewQAHandler(queries map[string]string) *QAHandler {
	return &QAHandler{queries: queries}
}

func (h *QAHandler) Handle(_ context.Context, query string) (string, error) {
	return h.queries[strings.ToLower(strings.TrimSpace(query))], nil
}

var _ QueryHandler = (*QAHandler)(nil)
