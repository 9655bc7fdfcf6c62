package nlu

import "strings"

// SentimentGate flags queries containing any configured negative phrase.
// Pure; an empty phrase list means nothing is ever flagged.
type SentimentGate struct {
	phrases []string
}

func NewSentimentGate(phrases []string) *SentimentGate {
	return &SentimentGate{phrases: phrases}
}

// Negative reports whether the lower-cased query contains a negative phrase.
func (g *SentimentGate) Negative(query string) bool {
	q := strings.ToLower(query)
	for _, phrase := range g.phrases {
		if phrase != "" && strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}
