// Package store loads the flat JSON tables the bot reads from. Everything is
// parsed once at startup; a failure to load any table is fatal to the caller,
// there is no partial-functionality mode.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

// File names expected under the data directory.
const (
	ordersFile     = "orders.json"
	pastOrdersFile = "past_orders.json"
	inventoryFile  = "inventory.json"
	agentsFile     = "agents.json"
	intentsFile    = "intent_phrases.json"
	negativesFile  = "negative_phrases.json"
	queriesFile    = "queries.json"
	responsesFile  = "responses.json"
)

// Tables holds every table and phrase catalog, already parsed.
type Tables struct {
	Orders          map[int]*model.Order
	PastOrders      map[int]*model.PastOrder
	Inventory       []model.Product
	Agents          []model.Agent
	Intents         []model.IntentEntry
	NegativePhrases []string
	Queries         map[string]string
	Responses       map[string][]string
}

// ExitPhrases returns the trigger phrases of the exit intent, used by the
// conversation termination check.
func (t *Tables) ExitPhrases() []string {
	for _, entry := range t.Intents {
		if entry.Intent == model.IntentExit {
			return entry.Phrases
		}
	}
	return nil
}

// Load reads all tables from dir.
func Load(dir string) (*Tables, error) {
	t := &Tables{}

	var rawOrders map[string]model.Order
	if err := readJSON(dir, ordersFile, &rawOrders); err != nil {
		return nil, err
	}
	t.Orders = make(map[int]*model.Order, len(rawOrders))
	for key, o := range rawOrders {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%s: bad order id %q: %w", ordersFile, key, err)
		}
		o := o
		o.ID = id
		t.Orders[id] = &o
	}

	var rawPast map[string]model.PastOrder
	if err := readJSON(dir, pastOrdersFile, &rawPast); err != nil {
		return nil, err
	}
	t.PastOrders = make(map[int]*model.PastOrder, len(rawPast))
	for key, o := range rawPast {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%s: bad order id %q: %w", pastOrdersFile, key, err)
		}
		o := o
		o.ID = id
		t.PastOrders[id] = &o
	}

	if err := readJSON(dir, inventoryFile, &t.Inventory); err != nil {
		return nil, err
	}
	if err := readJSON(dir, agentsFile, &t.Agents); err != nil {
		return nil, err
	}
	if err := readJSON(dir, intentsFile, &t.Intents); err != nil {
		return nil, err
	}
	if err := readJSON(dir, negativesFile, &t.NegativePhrases); err != nil {
		return nil, err
	}
	if err := readJSON(dir, queriesFile, &t.Queries); err != nil {
		return nil, err
	}
	if err := readJSON(dir, responsesFile, &t.Responses); err != nil {
		return nil, err
	}

	return t, nil
}

func readJSON(dir, name string, v any) error {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
