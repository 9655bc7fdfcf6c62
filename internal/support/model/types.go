package model

import "strings"

// Order is an outgoing order awaiting delivery. Immutable after load.
type Order struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	OrderDate    string `json:"order_date"`
	ETAHours     int    `json:"eta_hours"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
}

// PastOrder is an order that has already been delivered. Refunded is the only
// mutable field; it flips to true at most once.
type PastOrder struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	DeliveryDate string `json:"delivery_date"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
	Refunded     bool   `json:"refunded"`
}

// Product is a stocked inventory item. Quantity is a stocked count, never
// decremented by availability queries.
type Product struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Synonyms []string `json:"synonyms"`
	Tags     []string `json:"tags"`
}

// Matches reports whether the given item description matches this product:
// either the description is contained in the product name, or any synonym is
// contained in the description. Both sides are expected lower-cased.
func (p Product) Matches(item string) bool {
	if item != "" && strings.Contains(p.Name, item) {
		return true
	}
	for _, s := range p.Synonyms {
		if strings.Contains(item, s) {
			return true
		}
	}
	return false
}

// Agent is a human support agent. Available transitions true to false exactly
// once when the agent is allocated to a conversation.
type Agent struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}
