package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeValidTables(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, "orders.json", `{"1": {"customer_name": "Billy Bones", "order_date": "2025-07-02", "eta_hours": 48, "item": "spyglass", "quantity": 1}}`)
	writeFile(t, dir, "past_orders.json", `{"102": {"customer_name": "Israel Hands", "delivery_date": "2025-06-14", "item": "tricorn hat", "quantity": 2, "refunded": true}}`)
	writeFile(t, dir, "inventory.json", `[{"name": "pirate sword", "quantity": 0, "price": 89.99, "synonyms": ["cutlass"], "tags": ["weaponry"]}]`)
	writeFile(t, dir, "agents.json", `[{"name": "Jack", "available": true}, {"name": "Davy", "available": false}]`)
	writeFile(t, dir, "intent_phrases.json", `[{"intent": "order", "phrases": ["check my order"]}, {"intent": "exit", "phrases": ["bye", "farewell"]}]`)
	writeFile(t, dir, "negative_phrases.json", `["furious"]`)
	writeFile(t, dir, "queries.json", `{"what are your hours": "Sunrise to sunset."}`)
	writeFile(t, dir, "responses.json", `{"exit": ["Goodbye, matey!"]}`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)

	tables, err := Load(dir)
	require.NoError(t, err)

	require.Contains(t, tables.Orders, 1)
	assert.Equal(t, 1, tables.Orders[1].ID)
	assert.Equal(t, "Billy Bones", tables.Orders[1].CustomerName)
	assert.Equal(t, 48, tables.Orders[1].ETAHours)

	require.Contains(t, tables.PastOrders, 102)
	assert.True(t, tables.PastOrders[102].Refunded)

	require.Len(t, tables.Inventory, 1)
	assert.Equal(t, []string{"cutlass"}, tables.Inventory[0].Synonyms)

	require.Len(t, tables.Agents, 2)
	assert.True(t, tables.Agents[0].Available)

	require.Len(t, tables.Intents, 2)
	assert.Equal(t, model.IntentOrder, tables.Intents[0].Intent)

	assert.Equal(t, []string{"furious"}, tables.NegativePhrases)
	assert.Equal(t, "Sunrise to sunset.", tables.Queries["what are your hours"])
	assert.Equal(t, []string{"Goodbye, matey!"}, tables.Responses["exit"])
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "agents.json")))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "agents.json")
}

func TestLoadBadOrderID(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)
	writeFile(t, dir, "orders.json", `{"not-a-number": {"customer_name": "x"}}`)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "bad order id")
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)
	writeFile(t, dir, "inventory.json", `{not json`)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "inventory.json")
}

func TestExitPhrases(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)

	tables, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"bye", "farewell"}, tables.ExitPhrases())

	tables.Intents = tables.Intents[:1]
	assert.Nil(t, tables.ExitPhrases())
}
