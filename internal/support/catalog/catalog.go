// Package catalog serves the pre-authored response texts. Every user-facing
// line the bot produces comes out of here, picked at random among the
// candidates of a category and filled with caller-supplied values.
package catalog

import (
	"math/rand"
	"strings"

	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
)

// Response categories referenced throughout the pipeline.
const (
	CategoryNegative         = "negative"
	CategoryLiveAgent        = "live_agent"
	CategoryConnectingAgent  = "connecting_agent"
	CategoryNoAgents         = "no_agents"
	CategoryExit             = "exit"
	CategoryDefault          = "default"
	CategoryOrderID          = "order_id"
	CategoryRefundID         = "refund_id"
	CategoryInvalidOrderID   = "invalid_order_id"
	CategoryOrderNotFound    = "order_not_found"
	CategoryOrderArrival     = "order_arrival"
	CategoryProduct          = "product"
	CategoryProductAvailable = "product_available"
	CategoryNotAvailable     = "not_available"
	CategoryNotSold          = "not_sold"
	CategoryRefundReason     = "refund_reason"
	CategoryRefundProcessed  = "refund_already_processed"
	CategoryRefundSubmitted  = "refund_submitted"
	CategoryRetryExhausted   = "retry_exhausted"
)

// Catalog maps a category to its candidate response templates. Loaded once,
// read-only afterwards.
type Catalog struct {
	responses map[string][]string
}

func New(responses map[string][]string) *Catalog {
	return &Catalog{responses: responses}
}

// Pick returns a uniformly random candidate for the category. Selection is
// deliberately not idempotent. An unknown or empty category yields "" and a
// warning, never a panic.
func (c *Catalog) Pick(category string) string {
	candidates := c.responses[category]
	if len(candidates) == 0 {
		logx.Warn().Str("category", category).Msg("no responses configured for category")
		return ""
	}
	return candidates[rand.Intn(len(candidates))]
}

// Render picks a candidate for the category and substitutes {name} tokens
// with the given values.
func (c *Catalog) Render(category string, vars map[string]string) string {
	text := c.Pick(category)
	if len(vars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Has reports whether the category has at least one candidate.
func (c *Catalog) Has(category string) bool {
	return len(c.responses[category]) > 0
}
