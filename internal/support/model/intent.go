package model

// Intent is the category a user query is routed to for handling.
type Intent string

const (
	IntentOrder     Intent = "order"
	IntentRefund    Intent = "refund"
	IntentInventory Intent = "inventory"
	IntentLiveAgent Intent = "live_agent"
	IntentExit      Intent = "exit"
	// IntentDB is the exact-match predefined Q&A table, consulted before
	// intent classification.
	IntentDB      Intent = "db"
	IntentUnknown Intent = "unknown"
)

// IntentEntry binds an intent to its trigger phrases. Entries are kept in an
// ordered slice because classification is first-match-wins over the catalog's
// stored order.
type IntentEntry struct {
	Intent  Intent   `json:"intent"`
	Phrases []string `json:"phrases"`
}
